package similarity

import (
	"fmt"
	"sort"
)

// PValGlobal maps a global-error matrix to the probability that an error
// this small (or smaller) would be observed between unrelated songs, using
// the fixed global-error percentile table. Every entry of the result lies
// in {0, 0.01, ..., 1.00}. Any negative input entry returns
// ErrNegativeError.
func PValGlobal(x [][]float64) ([][]float64, error) {
	return pValue(x, globalPercentiles[:])
}

// PValLocal is the local-error counterpart of PValGlobal.
func PValLocal(x [][]float64) ([][]float64, error) {
	return pValue(x, localPercentiles[:])
}

// pValue performs the empirical-CDF step lookup: each entry becomes k/100,
// where k is the count of table entries strictly below the entry. The table
// holds the 1st through 100th percentiles of a reference error
// distribution, so the result is the fraction of that distribution's mass
// below the given error, saturating at 1 past the last threshold.
func pValue(x [][]float64, table []float64) ([][]float64, error) {
	p := make([][]float64, len(x))
	for i, row := range x {
		p[i] = make([]float64, len(row))
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("error matrix entry (%d,%d) is %g: %w",
					i, j, v, ErrNegativeError)
			}
			// First index with table[k] >= v == count of entries < v.
			p[i][j] = float64(sort.SearchFloat64s(table, v)) / 100
		}
	}
	return p, nil
}
