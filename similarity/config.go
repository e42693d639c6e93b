package similarity

// Config configures a similarity Analyzer.
type Config struct {
	// SampleRate of both recordings, in Hz.
	SampleRate int `json:"sample_rate"`

	// Threshold is the probability that the windowed global error would be
	// this low even between unrelated songs. Local similarity is kept only
	// where the global error is improbable at this significance level; the
	// smaller the threshold, the stricter the section identification.
	Threshold float64 `json:"threshold"`

	// GlobalWindow (T) is the number of frames averaged for the global
	// error. It should cover around 50ms of song; with frames spaced by 40
	// samples at 44.1kHz the default of 70 covers 63ms.
	GlobalWindow int `json:"global_window"`

	// IgnoreSilence excludes near-silent frames from the measurement.
	IgnoreSilence bool `json:"ignore_silence"`

	// SilencePercentile is the per-recording amplitude percentile used as
	// the silence cutoff when no explicit threshold is given.
	SilencePercentile float64 `json:"silence_percentile"`

	// SilenceSongTh and SilenceRefTh override the derived amplitude
	// cutoffs for the subject and reference recording respectively.
	SilenceSongTh *float64 `json:"silence_song_th,omitempty"`
	SilenceRefTh  *float64 `json:"silence_ref_th,omitempty"`

	// Features and Distances are the collaborator implementations. Left
	// nil, NewAnalyzer wires the reference implementations from the
	// features package.
	Features  FeatureProvider  `json:"-"`
	Distances DistanceProvider `json:"-"`
}

// DefaultConfig returns the configuration used by Sound Analysis-style
// measurements: 1% significance threshold, 70-frame global window, silence
// below the 15th amplitude percentile ignored.
func DefaultConfig() *Config {
	return &Config{
		SampleRate:        44100,
		Threshold:         0.01,
		GlobalWindow:      70,
		IgnoreSilence:     true,
		SilencePercentile: 15,
	}
}

func (c *Config) validate() error {
	if c.SampleRate <= 0 {
		return errBadConfigf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.Threshold <= 0 || c.Threshold >= 1 {
		return errBadConfigf("threshold must be in (0,1), got %g", c.Threshold)
	}
	if c.GlobalWindow < 2 {
		return errBadConfigf("global window must be at least 2 frames, got %d", c.GlobalWindow)
	}
	if c.SilencePercentile < 0 || c.SilencePercentile > 100 {
		return errBadConfigf("silence percentile must be in [0,100], got %g", c.SilencePercentile)
	}
	return nil
}
