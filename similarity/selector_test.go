package similarity_test

import (
	"math/rand"
	"testing"

	"github.com/songmetrics/songsim/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelectSections_SingleBlock verifies the section score formula: the
// sum of per-column maxima inside the box over the effective reference
// length.
func TestSelectSections_SingleBlock(t *testing.T) {
	sim := constantMatrix(12, 12, 0)
	fillBlock(sim, 2, 3, 8, 9, 0.5)

	score, sections := similarity.SelectSections(sim, 12)
	require.Len(t, sections, 1)

	// 7 reference columns, each with column max 0.5, over refLen 12.
	want := 7 * 0.5 / 12
	assert.InDelta(t, want, sections[0].P, 1e-12)
	assert.InDelta(t, want, score, 1e-12)
	assert.Equal(t, 2, sections[0].BegRow)
	assert.Equal(t, 3, sections[0].BegCol)
	assert.Equal(t, 8, sections[0].EndRow)
	assert.Equal(t, 9, sections[0].EndCol)
}

// TestSelectSections_BestFirst verifies greedy order: the higher-scoring
// of two disjoint blocks is selected first and removing its row/column
// extent leaves the other intact.
func TestSelectSections_BestFirst(t *testing.T) {
	// The blocks leave a zero gap so the forward flood cannot bridge them.
	sim := constantMatrix(14, 14, 0)
	fillBlock(sim, 0, 0, 5, 5, 0.5)
	fillBlock(sim, 8, 8, 13, 13, 1.0)

	score, sections := similarity.SelectSections(sim, 14)
	require.Len(t, sections, 2)

	assert.Equal(t, 8, sections[0].BegRow, "stronger bottom-right block first")
	assert.InDelta(t, 6*1.0/14, sections[0].P, 1e-12)
	assert.Equal(t, 0, sections[1].BegRow)
	assert.InDelta(t, 6*0.5/14, sections[1].P, 1e-12)
	assert.InDelta(t, sections[0].P+sections[1].P, score, 1e-12)
}

// TestSelectSections_OverlapRemoval verifies that selecting a section
// removes its entire row and column extent from further consideration,
// not just the box: a block sharing rows with the winner disappears.
func TestSelectSections_OverlapRemoval(t *testing.T) {
	sim := constantMatrix(14, 14, 0)
	fillBlock(sim, 0, 0, 6, 6, 1.0)
	// Same row span, different columns (with a zero gap at column 7); its
	// rows are wiped together with the winner's.
	fillBlock(sim, 0, 8, 6, 13, 0.4)

	_, sections := similarity.SelectSections(sim, 14)
	require.Len(t, sections, 1)
	assert.Equal(t, 0, sections[0].BegCol)
	assert.Equal(t, 6, sections[0].EndCol)
}

// TestSelectSections_ScoreBound verifies the sanity bound on random
// matrices: with values in [0,1] and refLen equal to the column count,
// selected column extents are disjoint, so the overall score cannot
// exceed 1.
func TestSelectSections_ScoreBound(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		sim := make([][]float64, 30)
		for i := range sim {
			sim[i] = make([]float64, 30)
			for j := range sim[i] {
				// Sparse positives so the matrices contain distinct regions.
				if rng.Float64() < 0.4 {
					sim[i][j] = rng.Float64()
				}
			}
		}
		score, _ := similarity.SelectSections(sim, 30)
		assert.LessOrEqual(t, score, 1.0+1e-9, "trial %d", trial)
		assert.GreaterOrEqual(t, score, 0.0, "trial %d", trial)
	}
}

// TestSelectSections_Degenerate verifies that no candidates is not an
// error: empty matrices and non-positive refLen yield a zero score and no
// sections.
func TestSelectSections_Degenerate(t *testing.T) {
	score, sections := similarity.SelectSections(constantMatrix(10, 10, 0), 10)
	assert.Zero(t, score)
	assert.Empty(t, sections)

	score, sections = similarity.SelectSections(constantMatrix(10, 10, 1), 0)
	assert.Zero(t, score)
	assert.Empty(t, sections)
}

// TestSelectSections_OriginalMatrixUntouched verifies that selection
// works on a private copy: the caller's similarity matrix is not zeroed.
func TestSelectSections_OriginalMatrixUntouched(t *testing.T) {
	sim := constantMatrix(10, 10, 1)
	_, _ = similarity.SelectSections(sim, 10)
	for i := range sim {
		for j := range sim[i] {
			require.Equal(t, 1.0, sim[i][j])
		}
	}
}
