package similarity

import "errors"

// Sentinel errors surfaced at component boundaries. They are wrapped with
// context via fmt.Errorf("...: %w", ...) so callers can match with errors.Is.
var (
	// ErrShapeMismatch means the per-feature distance matrices (or an
	// amplitude sequence) do not agree on the frames(song) x frames(refsong)
	// shape. No silent reshaping is attempted.
	ErrShapeMismatch = errors.New("similarity: matrix shape mismatch")

	// ErrNegativeError means an error matrix handed to the probability
	// mapper contained a negative entry. Errors must be non-negative.
	ErrNegativeError = errors.New("similarity: negative error value")

	// ErrEmptyInput means a recording produced no frames, or the distance
	// matrix set was empty.
	ErrEmptyInput = errors.New("similarity: empty input")

	// ErrBadConfig means the analyzer configuration failed validation.
	ErrBadConfig = errors.New("similarity: invalid configuration")
)
