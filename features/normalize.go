package features

import "gonum.org/v1/gonum/stat"

// ZScore returns a copy of s whose feature channels are scaled to zero
// mean and unit variance over the recording, so channels with different
// units contribute comparably to frame distances. Constant channels are
// only centered. The amplitude sequence is copied through unscaled.
func ZScore(s *Set) *Set {
	channels := make(map[string][]float64, len(s.Channels))
	for name, values := range s.Channels {
		channels[name] = zScore(values)
	}

	amplitude := make([]float64, len(s.Amplitude))
	copy(amplitude, s.Amplitude)

	return &Set{
		SampleRate: s.SampleRate,
		Amplitude:  amplitude,
		Channels:   channels,
	}
}

func zScore(values []float64) []float64 {
	normalized := make([]float64, len(values))
	if len(values) == 0 {
		return normalized
	}

	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 || std < 1e-10 {
		for i, v := range values {
			normalized[i] = v - mean
		}
		return normalized
	}
	for i, v := range values {
		normalized[i] = (v - mean) / std
	}
	return normalized
}
