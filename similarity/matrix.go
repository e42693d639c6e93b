package similarity

import (
	"fmt"
	"sort"
)

// newMatrix allocates a zeroed rows x cols matrix.
func newMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// cloneMatrix returns a deep copy of src.
func cloneMatrix(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i, row := range src {
		dst[i] = make([]float64, len(row))
		copy(dst[i], row)
	}
	return dst
}

// matrixShape returns (rows, cols) of m. cols is taken from the first row;
// ragged matrices are rejected by the shape checks at the call sites.
func matrixShape(m [][]float64) (int, int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// AggregateDistances combines the per-feature distance matrices into the
// local squared-error matrix L2: the elementwise mean across all matrices
// in the set. Aggregation is a mean, so the (undefined) map iteration order
// cannot affect the result beyond float round-off; feature names are still
// walked in sorted order so error messages are deterministic.
//
// All matrices must share one shape; a mismatch returns ErrShapeMismatch,
// an empty set returns ErrEmptyInput.
func AggregateDistances(dists map[string][][]float64) ([][]float64, error) {
	if len(dists) == 0 {
		return nil, fmt.Errorf("distance matrix set is empty: %w", ErrEmptyInput)
	}

	names := make([]string, 0, len(dists))
	for name := range dists {
		names = append(names, name)
	}
	sort.Strings(names)

	rows, cols := matrixShape(dists[names[0]])
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("feature %q has no frames: %w", names[0], ErrEmptyInput)
	}

	l2 := newMatrix(rows, cols)
	for _, name := range names {
		d := dists[name]
		if r, c := matrixShape(d); r != rows || c != cols {
			return nil, fmt.Errorf("feature %q is %dx%d, want %dx%d: %w",
				name, r, c, rows, cols, ErrShapeMismatch)
		}
		for i := range d {
			if len(d[i]) != cols {
				return nil, fmt.Errorf("feature %q row %d has %d columns, want %d: %w",
					name, i, len(d[i]), cols, ErrShapeMismatch)
			}
			for j, v := range d[i] {
				l2[i][j] += v
			}
		}
	}

	n := float64(len(names))
	for i := range l2 {
		for j := range l2[i] {
			l2[i][j] /= n
		}
	}
	return l2, nil
}
