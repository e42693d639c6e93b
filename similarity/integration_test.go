package similarity_test

import (
	"math"
	"testing"

	"github.com/songmetrics/songsim/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chirp synthesizes a linear frequency sweep, a stand-in for a song bout
// with time-varying features.
func chirp(seconds, f0, f1 float64, sampleRate int) []float64 {
	n := int(seconds * float64(sampleRate))
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		f := f0 + (f1-f0)*t/seconds
		samples[i] = 0.8 * math.Sin(2*math.Pi*f*t)
	}
	return samples
}

// TestCompare_SelfSimilarity runs the full pipeline, real feature
// extraction included, on a recording against itself. The local error
// vanishes exactly on the diagonal, so the similarity matrix carries a
// full-strength diagonal, one section spans the whole matrix and the
// score is 1.
func TestCompare_SelfSimilarity(t *testing.T) {
	song := chirp(0.25, 800, 4000, 44100)

	cfg := similarity.DefaultConfig()
	cfg.IgnoreSilence = false
	analyzer, err := similarity.NewAnalyzer(cfg)
	require.NoError(t, err)

	res, err := analyzer.Compare(song, song)
	require.NoError(t, err)

	frames := len(res.SimMatrix)
	require.Greater(t, frames, 5)
	require.Len(t, res.SimMatrix[0], frames, "self comparison must be square")

	for k := 0; k < frames; k++ {
		assert.Zero(t, res.L2[k][k], "local error must vanish on the diagonal")
		assert.Equal(t, 1.0, res.SimMatrix[k][k], "diagonal similarity must be full")
	}

	require.Len(t, res.Sections, 1)
	assert.Equal(t, similarity.Section{BegRow: 0, BegCol: 0, EndRow: frames - 1, EndCol: frames - 1, P: 1}, res.Sections[0])
	assert.InDelta(t, 1.0, res.Score, 1e-12)
}

// TestCompare_Deterministic verifies that the full pipeline has no hidden
// randomness: two runs on identical inputs yield identical result
// bundles.
func TestCompare_Deterministic(t *testing.T) {
	song := chirp(0.2, 600, 3000, 44100)
	refsong := chirp(0.2, 900, 2500, 44100)

	first, err := similarity.Compare(song, refsong, 44100)
	require.NoError(t, err)
	second, err := similarity.Compare(song, refsong, 44100)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestCompare_ShortRecording verifies that a recording shorter than one
// analysis window surfaces the feature provider's error.
func TestCompare_ShortRecording(t *testing.T) {
	_, err := similarity.Compare(make([]float64, 100), chirp(0.2, 600, 3000, 44100), 44100)
	assert.Error(t, err)
}
