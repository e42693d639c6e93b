// Package features provides the reference collaborators of the similarity
// engine: per-frame acoustic feature extraction and pairwise feature
// distances. Recordings arrive as raw sample slices; format parsing and
// file I/O stay with the caller.
package features

import "errors"

var (
	// ErrShortRecording means the recording does not cover a single
	// analysis window.
	ErrShortRecording = errors.New("features: recording shorter than one analysis window")

	// ErrNoFrames means a feature set holds no frames.
	ErrNoFrames = errors.New("features: feature set has no frames")

	// ErrNoSharedFeatures means two feature sets have no feature name in
	// common to compute distances over.
	ErrNoSharedFeatures = errors.New("features: no shared feature names")

	// ErrRaggedSet means a feature channel disagrees with the set's frame
	// count.
	ErrRaggedSet = errors.New("features: channel length differs from frame count")
)

// Set holds the per-frame features of one recording: the amplitude
// sequence used for silence suppression, and the named scalar feature
// channels used for distance computation. All sequences have one value
// per analysis frame.
type Set struct {
	SampleRate int                  `json:"sample_rate"`
	Amplitude  []float64            `json:"amplitude"`
	Channels   map[string][]float64 `json:"channels"`
}

// Frames returns the number of analysis frames in the set.
func (s *Set) Frames() int {
	return len(s.Amplitude)
}
