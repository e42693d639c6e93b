package features

import "math"

// Frame slices samples into fixed-size analysis windows advanced by
// hopSize samples. Each window is a copy; trailing samples that do not
// fill a whole window are dropped. Returns nil when the signal is shorter
// than one window.
func Frame(samples []float64, windowSize, hopSize int) [][]float64 {
	if windowSize <= 0 || hopSize <= 0 || len(samples) < windowSize {
		return nil
	}
	numFrames := (len(samples)-windowSize)/hopSize + 1
	frames := make([][]float64, numFrames)
	for t := range frames {
		start := t * hopSize
		frame := make([]float64, windowSize)
		copy(frame, samples[start:start+windowSize])
		frames[t] = frame
	}
	return frames
}

// hannWindow generates symmetric Hann window coefficients.
func hannWindow(size int) []float64 {
	coefficients := make([]float64, size)
	denominator := float64(size - 1)
	for i := range coefficients {
		coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/denominator))
	}
	return coefficients
}
