package similarity

// Result bundles the outcome of one similarity computation. The caller
// owns it; nothing in it is shared with later computations.
type Result struct {
	// Score is the overall similarity in [0,1]: the sum of the selected
	// sections' P values.
	Score float64 `json:"score"`

	// Sections are the selected similarity sections, best first.
	Sections []Section `json:"sections"`

	// SimMatrix is the thresholded similarity matrix (local similarity
	// where the global gate accepted the cell, 0 elsewhere, silent
	// rows/columns zeroed).
	SimMatrix [][]float64 `json:"sim_matrix"`

	// GlobMatrix is the global similarity probability (1 - P(global
	// error)).
	GlobMatrix [][]float64 `json:"glob_matrix"`

	// L2 and G2 are the local and windowed-global error matrices.
	L2 [][]float64 `json:"l2"`
	G2 [][]float64 `json:"g2"`

	// EffectiveRefLen is the number of reference frames that
	// participated in scoring (non-silent frames when silence
	// suppression is on).
	EffectiveRefLen int `json:"effective_ref_len"`
}
