package similarity_test

import (
	"testing"

	"github.com/songmetrics/songsim/features"
	"github.com/songmetrics/songsim/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFeatures hands out canned feature sets keyed by the recording's
// first sample, so the song and reference recordings can carry distinct
// amplitude profiles through the pipeline.
type stubFeatures struct {
	sets map[float64]*features.Set
}

func (s *stubFeatures) Extract(samples []float64, sampleRate int) (*features.Set, error) {
	return s.sets[samples[0]], nil
}

// stubDistances returns a single-feature distance set filled with a fixed
// value, shaped by the two sets' frame counts.
type stubDistances struct {
	value float64
}

func (s *stubDistances) Distances(song, refsong *features.Set) (map[string][][]float64, error) {
	m := make([][]float64, song.Frames())
	for i := range m {
		m[i] = make([]float64, refsong.Frames())
		for j := range m[i] {
			m[i][j] = s.value
		}
	}
	return map[string][][]float64{"stub": m}, nil
}

// flatSet builds a feature set with the given amplitudes and a matching
// dummy channel.
func flatSet(amplitude []float64) *features.Set {
	channel := make([]float64, len(amplitude))
	return &features.Set{
		SampleRate: 44100,
		Amplitude:  amplitude,
		Channels:   map[string][]float64{"stub": channel},
	}
}

// stubAnalyzer wires an Analyzer over stub providers: the song recording
// starts with sample 1, the reference with sample 2.
func stubAnalyzer(t *testing.T, cfg *similarity.Config, songSet, refSet *features.Set, distance float64) *similarity.Analyzer {
	t.Helper()
	cfg.Features = &stubFeatures{sets: map[float64]*features.Set{1: songSet, 2: refSet}}
	cfg.Distances = &stubDistances{value: distance}
	analyzer, err := similarity.NewAnalyzer(cfg)
	require.NoError(t, err)
	return analyzer
}

func constantSlice(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// TestCompare_IdenticalSongs covers the zero-error scenario: vanishing
// local error everywhere means full local and global similarity, one
// section spanning the whole matrix, and an overall score of 1.
func TestCompare_IdenticalSongs(t *testing.T) {
	cfg := similarity.DefaultConfig()
	cfg.IgnoreSilence = false

	analyzer := stubAnalyzer(t, cfg, flatSet(constantSlice(10, 1)), flatSet(constantSlice(10, 1)), 0)
	res, err := analyzer.Compare([]float64{1}, []float64{2})
	require.NoError(t, err)

	for i := range res.SimMatrix {
		for j := range res.SimMatrix[i] {
			assert.Equal(t, 1.0, res.SimMatrix[i][j], "cell (%d,%d)", i, j)
			assert.Equal(t, 1.0, res.GlobMatrix[i][j], "cell (%d,%d)", i, j)
		}
	}
	require.Len(t, res.Sections, 1)
	assert.Equal(t, similarity.Section{BegRow: 0, BegCol: 0, EndRow: 9, EndCol: 9, P: 1}, res.Sections[0])
	assert.InDelta(t, 1.0, res.Score, 1e-12)
	assert.Equal(t, 10, res.EffectiveRefLen)
}

// TestCompare_UnrelatedSongs covers the disjoint-distributions scenario:
// errors beyond every tabulated threshold leave the global gate closed
// everywhere, so no sections are found and the score is 0. A degenerate
// result, not an error.
func TestCompare_UnrelatedSongs(t *testing.T) {
	cfg := similarity.DefaultConfig()
	cfg.IgnoreSilence = false

	analyzer := stubAnalyzer(t, cfg, flatSet(constantSlice(10, 1)), flatSet(constantSlice(10, 1)), 1e9)
	res, err := analyzer.Compare([]float64{1}, []float64{2})
	require.NoError(t, err)

	assert.Zero(t, res.Score)
	assert.Empty(t, res.Sections)
	for i := range res.SimMatrix {
		for j := range res.SimMatrix[i] {
			assert.Zero(t, res.SimMatrix[i][j], "cell (%d,%d)", i, j)
		}
	}
}

// TestCompare_SilenceSuppression covers silence handling with explicit
// cutoffs: rows and columns of frames below the cutoff are zeroed, and
// the effective reference length shrinks by the suppressed frames.
func TestCompare_SilenceSuppression(t *testing.T) {
	cutoff := 0.5
	cfg := similarity.DefaultConfig()
	cfg.SilenceSongTh = &cutoff
	cfg.SilenceRefTh = &cutoff

	// First three frames of both recordings are silent.
	amp := append(constantSlice(3, 0.1), constantSlice(7, 1)...)
	analyzer := stubAnalyzer(t, cfg, flatSet(amp), flatSet(amp), 0)
	res, err := analyzer.Compare([]float64{1}, []float64{2})
	require.NoError(t, err)

	assert.Equal(t, 7, res.EffectiveRefLen)
	for k := 0; k < 3; k++ {
		for n := 0; n < 10; n++ {
			assert.Zero(t, res.SimMatrix[k][n], "silent row %d", k)
			assert.Zero(t, res.SimMatrix[n][k], "silent column %d", k)
		}
	}

	// The surviving 7x7 block is fully similar and spans all non-silent
	// reference frames, so it still scores 1.
	require.Len(t, res.Sections, 1)
	assert.Equal(t, similarity.Section{BegRow: 3, BegCol: 3, EndRow: 9, EndCol: 9, P: 1}, res.Sections[0])
	assert.InDelta(t, 1.0, res.Score, 1e-12)
}

// TestCompare_PercentileCutoff verifies the derived silence cutoff: with
// a spread amplitude distribution and no explicit threshold, roughly the
// bottom 15% of reference frames drop out of the effective length.
func TestCompare_PercentileCutoff(t *testing.T) {
	amp := make([]float64, 20)
	for i := range amp {
		amp[i] = float64(i + 1)
	}

	analyzer := stubAnalyzer(t, similarity.DefaultConfig(), flatSet(amp), flatSet(amp), 0)
	res, err := analyzer.Compare([]float64{1}, []float64{2})
	require.NoError(t, err)

	assert.Less(t, res.EffectiveRefLen, 20, "some frames must be suppressed")
	assert.GreaterOrEqual(t, res.EffectiveRefLen, 15, "suppression must stay near the 15th percentile")
}

// fixedShapeDistances ignores the sets' frame counts and always returns
// one zero matrix of the configured shape.
type fixedShapeDistances struct {
	rows, cols int
}

func (f *fixedShapeDistances) Distances(song, refsong *features.Set) (map[string][][]float64, error) {
	m := make([][]float64, f.rows)
	for i := range m {
		m[i] = make([]float64, f.cols)
	}
	return map[string][][]float64{"stub": m}, nil
}

// TestCompare_AmplitudeShapeMismatch verifies that a provider handing
// back amplitudes that disagree with the distance shape is rejected with
// ErrShapeMismatch when silence suppression needs them.
func TestCompare_AmplitudeShapeMismatch(t *testing.T) {
	cfg := similarity.DefaultConfig()
	cfg.Features = &stubFeatures{sets: map[float64]*features.Set{
		1: flatSet(constantSlice(5, 1)),
		2: flatSet(constantSlice(10, 1)),
	}}
	cfg.Distances = &fixedShapeDistances{rows: 10, cols: 10}
	analyzer, err := similarity.NewAnalyzer(cfg)
	require.NoError(t, err)

	_, err = analyzer.Compare([]float64{1}, []float64{2})
	assert.ErrorIs(t, err, similarity.ErrShapeMismatch)
}

// TestNewAnalyzer_Validation verifies the configuration checks.
func TestNewAnalyzer_Validation(t *testing.T) {
	for name, mutate := range map[string]func(*similarity.Config){
		"zero sample rate":    func(c *similarity.Config) { c.SampleRate = 0 },
		"threshold too low":   func(c *similarity.Config) { c.Threshold = 0 },
		"threshold too high":  func(c *similarity.Config) { c.Threshold = 1 },
		"window too small":    func(c *similarity.Config) { c.GlobalWindow = 1 },
		"percentile negative": func(c *similarity.Config) { c.SilencePercentile = -1 },
		"percentile over 100": func(c *similarity.Config) { c.SilencePercentile = 101 },
	} {
		cfg := similarity.DefaultConfig()
		mutate(cfg)
		_, err := similarity.NewAnalyzer(cfg)
		assert.ErrorIs(t, err, similarity.ErrBadConfig, name)
	}
}

// TestNewAnalyzer_Defaults verifies that a nil config and nil providers
// are filled in rather than rejected.
func TestNewAnalyzer_Defaults(t *testing.T) {
	analyzer, err := similarity.NewAnalyzer(nil)
	require.NoError(t, err)
	assert.NotNil(t, analyzer)
}
