package features

import (
	"fmt"
	"sort"

	"github.com/songmetrics/songsim/logging"
)

// Distancer is the reference distance provider. It z-scores both feature
// sets over their own recordings, then builds one distance matrix per
// shared feature name: entry (i,j) is the squared difference between the
// feature value at song frame i and reference frame j. All returned
// matrices share the frames(song) x frames(refsong) shape.
type Distancer struct {
	logger logging.Logger
}

// NewDistancer creates a Distancer.
func NewDistancer() *Distancer {
	return &Distancer{
		logger: logging.WithFields(logging.Fields{
			"component": "feature_distancer",
		}),
	}
}

// Distances computes the per-feature distance matrix set between two
// recordings. Either set without frames returns ErrNoFrames; disjoint
// feature names return ErrNoSharedFeatures.
func (d *Distancer) Distances(song, refsong *Set) (map[string][][]float64, error) {
	rows, cols := song.Frames(), refsong.Frames()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("song has %d frames, reference has %d: %w",
			rows, cols, ErrNoFrames)
	}

	names := make([]string, 0, len(song.Channels))
	for name := range song.Channels {
		if _, ok := refsong.Channels[name]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, ErrNoSharedFeatures
	}
	sort.Strings(names)

	for _, name := range names {
		if n := len(song.Channels[name]); n != rows {
			return nil, fmt.Errorf("song channel %q has %d values for %d frames: %w",
				name, n, rows, ErrRaggedSet)
		}
		if n := len(refsong.Channels[name]); n != cols {
			return nil, fmt.Errorf("reference channel %q has %d values for %d frames: %w",
				name, n, cols, ErrRaggedSet)
		}
	}

	a := ZScore(song)
	b := ZScore(refsong)

	d.logger.Debug("Computing feature distances", logging.Fields{
		"features":    len(names),
		"song_frames": rows,
		"ref_frames":  cols,
	})

	dists := make(map[string][][]float64, len(names))
	for _, name := range names {
		songVals := a.Channels[name]
		refVals := b.Channels[name]
		matrix := make([][]float64, rows)
		for i := 0; i < rows; i++ {
			row := make([]float64, cols)
			for j := 0; j < cols; j++ {
				diff := songVals[i] - refVals[j]
				row[j] = diff * diff
			}
			matrix[i] = row
		}
		dists[name] = matrix
	}
	return dists, nil
}
