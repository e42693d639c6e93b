package similarity

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// SelectSections greedily picks the best non-overlapping similarity
// sections. refLen is the effective reference length: the count of
// reference frames participating in scoring (non-silent frames when
// silence suppression is on).
//
// Each pass identifies candidate sections in a working copy, scores every
// candidate against the unmodified similarity matrix, keeps the
// highest-scoring one and zeroes its entire row and column extent in the
// working copy - not just the box - so nothing overlapping the chosen
// span can be picked again. Ties on the score go to the candidate whose
// seed comes later in row-major order (stable ascending sort, last taken).
//
// Returns the overall score (sum of the selected sections' P values, best
// first) and the selected sections. Zero sections is a valid outcome.
func SelectSections(sim [][]float64, refLen int) (float64, []Section) {
	if refLen <= 0 {
		return 0, nil
	}

	var selected []Section
	working := cloneMatrix(sim)
	for {
		candidates := IdentifySections(working)
		if len(candidates) == 0 {
			break
		}
		for k := range candidates {
			candidates[k].P = sectionScore(sim, candidates[k], refLen)
		}
		sort.SliceStable(candidates, func(a, b int) bool {
			return candidates[a].P < candidates[b].P
		})
		best := candidates[len(candidates)-1]

		for i := best.BegRow; i <= best.EndRow; i++ {
			for j := range working[i] {
				working[i][j] = 0
			}
		}
		for i := range working {
			for j := best.BegCol; j <= best.EndCol; j++ {
				working[i][j] = 0
			}
		}
		selected = append(selected, best)
	}

	score := 0.0
	for _, s := range selected {
		score += s.P
	}
	return score, selected
}

// sectionScore rates a candidate box: the sum over its reference columns
// of the best similarity any subject frame in the box achieves for that
// column, normalized by the effective reference length. A box scores high
// when every reference frame it spans is well explained by at least one
// subject frame.
func sectionScore(sim [][]float64, s Section, refLen int) float64 {
	colMax := make([]float64, s.EndCol-s.BegCol+1)
	for j := s.BegCol; j <= s.EndCol; j++ {
		best := sim[s.BegRow][j]
		for i := s.BegRow + 1; i <= s.EndRow; i++ {
			if sim[i][j] > best {
				best = sim[i][j]
			}
		}
		colMax[j-s.BegCol] = best
	}
	return floats.Sum(colMax) / float64(refLen)
}
