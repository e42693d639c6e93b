package features

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/songmetrics/songsim/logging"
	"gonum.org/v1/gonum/floats"
)

// minPower avoids log(0) in dB and entropy computations.
const minPower = 1e-12

// ExtractorConfig configures the spectral feature extractor.
type ExtractorConfig struct {
	// WindowSize is the analysis window length in samples.
	WindowSize int `json:"window_size"`

	// HopSize is the advance between consecutive windows in samples. The
	// 40-sample default gives the frame spacing the global-error window
	// length is tuned against.
	HopSize int `json:"hop_size"`
}

// DefaultExtractorConfig returns the standard analysis framing: 1024
// sample Hann windows advanced by 40 samples.
func DefaultExtractorConfig() *ExtractorConfig {
	return &ExtractorConfig{
		WindowSize: 1024,
		HopSize:    40,
	}
}

// Extractor computes per-frame acoustic features from raw samples: a
// Hann-windowed magnitude spectrum per frame via FFT, reduced to the
// scalar features the similarity measurement compares (pitch as spectral
// centroid, Wiener entropy, frequency and amplitude modulation), plus the
// frame amplitude used for silence suppression.
type Extractor struct {
	cfg    *ExtractorConfig
	window []float64
	logger logging.Logger
}

// NewExtractor creates an Extractor. A nil cfg means
// DefaultExtractorConfig.
func NewExtractor(cfg *ExtractorConfig) *Extractor {
	if cfg == nil {
		cfg = DefaultExtractorConfig()
	}
	return &Extractor{
		cfg:    cfg,
		window: hannWindow(cfg.WindowSize),
		logger: logging.WithFields(logging.Fields{
			"component": "feature_extractor",
		}),
	}
}

// Extract computes the feature set of one recording. The recording must
// cover at least one analysis window, otherwise ErrShortRecording.
func (e *Extractor) Extract(samples []float64, sampleRate int) (*Set, error) {
	frames := Frame(samples, e.cfg.WindowSize, e.cfg.HopSize)
	if len(frames) == 0 {
		return nil, fmt.Errorf("%d samples with window %d: %w",
			len(samples), e.cfg.WindowSize, ErrShortRecording)
	}

	e.logger.Debug("Extracting features", logging.Fields{
		"frames":      len(frames),
		"window_size": e.cfg.WindowSize,
		"hop_size":    e.cfg.HopSize,
		"sample_rate": sampleRate,
	})

	numFrames := len(frames)
	freqBins := e.cfg.WindowSize/2 + 1
	binHz := float64(sampleRate) / float64(e.cfg.WindowSize)

	amplitude := make([]float64, numFrames)
	pitch := make([]float64, numFrames)
	entropy := make([]float64, numFrames)
	fm := make([]float64, numFrames)
	am := make([]float64, numFrames)

	windowed := make([]float64, e.cfg.WindowSize)
	prevMag := make([]float64, freqBins)
	mag := make([]float64, freqBins)
	for t, frame := range frames {
		for i, v := range frame {
			windowed[i] = v * e.window[i]
		}
		spectrum := fft.FFTReal(windowed)
		for k := 0; k < freqBins; k++ {
			mag[k] = cmplx.Abs(spectrum[k])
		}

		power := floats.Dot(mag, mag)
		amplitude[t] = 10 * math.Log10(power+minPower)
		pitch[t] = spectralCentroid(mag, binHz)
		entropy[t] = wienerEntropy(mag)
		if t > 0 {
			fm[t] = spectralFlux(mag, prevMag)
			am[t] = amplitude[t] - amplitude[t-1]
		}
		copy(prevMag, mag)
	}

	return &Set{
		SampleRate: sampleRate,
		Amplitude:  amplitude,
		Channels: map[string][]float64{
			"pitch":   pitch,
			"entropy": entropy,
			"fm":      fm,
			"am":      am,
		},
	}, nil
}

// spectralCentroid returns the magnitude-weighted mean frequency in Hz,
// the extractor's pitch estimate. Near-silent frames map to 0.
func spectralCentroid(mag []float64, binHz float64) float64 {
	total := floats.Sum(mag)
	if total < minPower {
		return 0
	}
	weighted := 0.0
	for k, m := range mag {
		weighted += float64(k) * binHz * m
	}
	return weighted / total
}

// wienerEntropy returns the log ratio of the geometric to the arithmetic
// mean of the magnitude spectrum. Pure tones approach large negative
// values, white noise approaches 0.
func wienerEntropy(mag []float64) float64 {
	logSum := 0.0
	for _, m := range mag {
		logSum += math.Log(m + minPower)
	}
	geometricMean := math.Exp(logSum / float64(len(mag)))
	arithmeticMean := floats.Sum(mag) / float64(len(mag))
	return math.Log(geometricMean/(arithmeticMean+minPower) + minPower)
}

// spectralFlux returns the Euclidean distance between consecutive
// magnitude spectra, the extractor's frequency-modulation estimate.
func spectralFlux(mag, prevMag []float64) float64 {
	sum := 0.0
	for k := range mag {
		diff := mag[k] - prevMag[k]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
