package similarity

// GlobalError computes the windowed global error matrix G2 from the local
// error matrix L2. G2[i][j] is the mean of L2 along the diagonal band from
// (i-T/2, j-T/2) to (i+T/2, j+T/2), clipped to the matrix bounds. T is the
// number of frames the band covers; with the default frame spacing it is
// tuned so the band spans roughly 50ms of audio.
//
// Interior cells reuse a running diagonal sum so the whole matrix fills in
// O(rows*cols); cells within T of the top/left edges or 2T of the
// bottom/right edges recompute their clipped window directly, since the
// band footprint changes shape there. The two paths agree on the defining
// value, the split is only a shortcut.
func GlobalError(l2 [][]float64, T int) [][]float64 {
	rows, cols := matrixShape(l2)
	g2 := newMatrix(rows, cols)
	if rows == 0 || cols == 0 {
		return g2
	}

	sum := newMatrix(rows, cols)
	half := T / 2
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch {
			case i <= T || j <= T:
				s, n := diagSum(l2, max(i-half, 0), max(j-half, 0), i+half, j+half)
				sum[i][j] = s
				if n > 0 {
					g2[i][j] = s / float64(n)
				}
			case i < rows-2*T && j < cols-2*T:
				sum[i][j] = sum[i-1][j-1] - l2[i-1-half][j-1-half] + l2[i+half-1][j+half-1]
				g2[i][j] = sum[i][j] / float64(T)
			default:
				s, n := diagSum(l2, i-half, j-half, i+half, j+half)
				if n > 0 {
					g2[i][j] = s / float64(n)
				}
			}
		}
	}
	return g2
}

// diagSum sums l2 along the diagonal starting at (i0, j0), stopping before
// the exclusive bounds (i1, j1) clipped to the matrix. Returns the sum and
// the number of cells in the clipped diagonal.
func diagSum(l2 [][]float64, i0, j0, i1, j1 int) (float64, int) {
	rows, cols := len(l2), len(l2[0])
	i1 = min(i1, rows)
	j1 = min(j1, cols)
	n := min(i1-i0, j1-j0)
	if n <= 0 {
		return 0, 0
	}
	s := 0.0
	for k := 0; k < n; k++ {
		s += l2[i0+k][j0+k]
	}
	return s, n
}
