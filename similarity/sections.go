package similarity

// Section is a rectangular, time-aligned region of the similarity matrix
// rated as a matching fragment between the two recordings. Rows index
// subject-song frames, columns reference-song frames; End coordinates are
// inclusive. P is filled in by the selector.
type Section struct {
	BegRow int     `json:"beg_row"`
	BegCol int     `json:"beg_col"`
	EndRow int     `json:"end_row"`
	EndCol int     `json:"end_col"`
	P      float64 `json:"p"`
}

type coord struct {
	i, j int
}

// minSectionSpan is the strict lower bound on both box dimensions
// (EndRow-BegRow and EndCol-BegCol); smaller boxes are discarded as noise.
const minSectionSpan = 4

// IdentifySections extracts the maximal connected regions of positive
// similarity as candidate sections.
//
// Positive cells are processed as seeds in ascending row-major order. Each
// unvisited seed starts a stack flood that moves only forward - to
// (i+1,j), (i,j+1) and (i+1,j+1) - so a region can only grow toward larger
// indices. The bounding box is the seed corner plus the elementwise
// maximum of every coordinate the flood reaches.
//
// Two visited sets are kept. The flood-local set stops cycles within one
// flood; the global set persists across floods and suppresses later seeds
// inside an already-explored region. A cell can belong to two overlapping
// regions, but any seed strictly inside a discovered region can only yield
// a sub-box of it, so with top-left-first processing the first seed of a
// connected blob always defines the canonical, largest box.
func IdentifySections(m [][]float64) []Section {
	rows, cols := matrixShape(m)
	if rows == 0 || cols == 0 {
		return nil
	}

	directions := [3]coord{{1, 0}, {0, 1}, {1, 1}}

	var sections []Section
	visited := make([]bool, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if m[i][j] <= 0 || visited[i*cols+j] {
				continue
			}

			locVisited := make([]bool, rows*cols)
			locVisited[i*cols+j] = true
			beg := coord{i, j}
			end := coord{i, j}
			stack := []coord{beg}
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				end.i = max(end.i, cur.i)
				end.j = max(end.j, cur.j)
				for _, d := range directions {
					ni, nj := cur.i+d.i, cur.j+d.j
					if ni >= rows || nj >= cols || m[ni][nj] <= 0 || locVisited[ni*cols+nj] {
						continue
					}
					locVisited[ni*cols+nj] = true
					stack = append(stack, coord{ni, nj})
				}
			}

			if end.i-beg.i > minSectionSpan && end.j-beg.j > minSectionSpan {
				sections = append(sections, Section{
					BegRow: beg.i,
					BegCol: beg.j,
					EndRow: end.i,
					EndCol: end.j,
				})
			}

			// Everything this flood touched is inside a known region, so it
			// must not seed a new (necessarily smaller) one later.
			for k, v := range locVisited {
				if v {
					visited[k] = true
				}
			}
		}
	}
	return sections
}
