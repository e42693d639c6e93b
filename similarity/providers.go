package similarity

import "github.com/songmetrics/songsim/features"

// FeatureProvider turns a recording into per-frame features: an amplitude
// sequence plus the named scalar feature channels consumed by the distance
// provider. The features package ships the reference implementation.
type FeatureProvider interface {
	Extract(samples []float64, sampleRate int) (*features.Set, error)
}

// DistanceProvider normalizes two feature sets and computes one
// frames(song) x frames(refsong) distance matrix per shared feature name.
// All returned matrices must share that one shape.
type DistanceProvider interface {
	Distances(song, refsong *features.Set) (map[string][][]float64, error)
}
