// Package similarity measures how acoustically similar a song is to a
// reference (tutor) song, following the procedure of Tchernichovski,
// Nottebohm, Ho, Pesaran & Mitra (2000), "A procedure for an automated
// measurement of song similarity", Animal Behaviour 59(6). Per-feature
// frame distances are averaged into a local error matrix, smoothed into a
// windowed global error, converted to probabilities against fixed
// empirical reference distributions, gated into a similarity matrix, and
// finally carved into the best non-overlapping similarity sections.
package similarity

import (
	"fmt"
	"sort"
	"time"

	"github.com/songmetrics/songsim/features"
	"github.com/songmetrics/songsim/logging"
	"gonum.org/v1/gonum/stat"
)

func errBadConfigf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrBadConfig)...)
}

// Analyzer runs similarity measurements with one fixed configuration. It
// holds no per-measurement state, so a single Analyzer may be reused
// across recordings.
type Analyzer struct {
	cfg    *Config
	logger logging.Logger
}

// NewAnalyzer creates an Analyzer. A nil cfg means DefaultConfig; nil
// providers are filled with the reference implementations from the
// features package. Configuration failures return ErrBadConfig.
func NewAnalyzer(cfg *Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Features == nil {
		cfg.Features = features.NewExtractor(features.DefaultExtractorConfig())
	}
	if cfg.Distances == nil {
		cfg.Distances = features.NewDistancer()
	}

	return &Analyzer{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "similarity_analyzer",
		}),
	}, nil
}

// Compare measures the similarity of song to refsong with the default
// configuration.
func Compare(song, refsong []float64, sampleRate int) (*Result, error) {
	cfg := DefaultConfig()
	cfg.SampleRate = sampleRate
	analyzer, err := NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}
	return analyzer.Compare(song, refsong)
}

// Compare measures how much of refsong is covered by acoustically similar
// fragments of song. The computation is pure and deterministic: identical
// inputs produce identical result bundles.
func (a *Analyzer) Compare(song, refsong []float64) (*Result, error) {
	startTime := time.Now()

	logger := a.logger.WithFields(logging.Fields{
		"function":      "Compare",
		"song_samples":  len(song),
		"ref_samples":   len(refsong),
		"sample_rate":   a.cfg.SampleRate,
		"threshold":     a.cfg.Threshold,
		"global_window": a.cfg.GlobalWindow,
	})
	logger.Debug("Starting similarity measurement")

	songSet, err := a.cfg.Features.Extract(song, a.cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("extracting song features: %w", err)
	}
	refSet, err := a.cfg.Features.Extract(refsong, a.cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("extracting reference features: %w", err)
	}

	dists, err := a.cfg.Distances.Distances(songSet, refSet)
	if err != nil {
		return nil, fmt.Errorf("computing feature distances: %w", err)
	}

	l2, err := AggregateDistances(dists)
	if err != nil {
		return nil, err
	}
	g2 := GlobalError(l2, a.cfg.GlobalWindow)

	sim, glob, err := buildSimilarity(l2, g2, a.cfg.Threshold)
	if err != nil {
		return nil, err
	}

	rows, cols := matrixShape(sim)
	refLen := cols
	if a.cfg.IgnoreSilence {
		if len(songSet.Amplitude) != rows {
			return nil, fmt.Errorf("song amplitude has %d frames, similarity has %d rows: %w",
				len(songSet.Amplitude), rows, ErrShapeMismatch)
		}
		if len(refSet.Amplitude) != cols {
			return nil, fmt.Errorf("reference amplitude has %d frames, similarity has %d columns: %w",
				len(refSet.Amplitude), cols, ErrShapeMismatch)
		}
		refLen = a.suppressSilence(sim, songSet.Amplitude, refSet.Amplitude)
	}

	score, sections := SelectSections(sim, refLen)

	logger.Info("Similarity measurement completed", logging.Fields{
		"score":             score,
		"sections":          len(sections),
		"effective_ref_len": refLen,
		"processing_time":   time.Since(startTime),
	})

	return &Result{
		Score:           score,
		Sections:        sections,
		SimMatrix:       sim,
		GlobMatrix:      glob,
		L2:              l2,
		G2:              g2,
		EffectiveRefLen: refLen,
	}, nil
}

// buildSimilarity converts the error matrices into the similarity matrix:
// the local similarity probability wherever the global error is improbable
// between unrelated songs at the given significance threshold, 0
// everywhere else. Also returns the global similarity probability matrix.
func buildSimilarity(l2, g2 [][]float64, threshold float64) (sim, glob [][]float64, err error) {
	pGlob, err := PValGlobal(g2)
	if err != nil {
		return nil, nil, err
	}
	pLocal, err := PValLocal(l2)
	if err != nil {
		return nil, nil, err
	}

	rows, cols := matrixShape(l2)
	sim = newMatrix(rows, cols)
	glob = newMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			glob[i][j] = 1 - pGlob[i][j]
			if glob[i][j] > 1-threshold {
				sim[i][j] = 1 - pLocal[i][j]
			}
		}
	}
	return sim, glob, nil
}

// suppressSilence zeroes every row whose song frame is below the song
// cutoff and every column whose reference frame is below the reference
// cutoff, then returns the effective reference length: the count of
// reference frames kept.
func (a *Analyzer) suppressSilence(sim [][]float64, ampSong, ampRef []float64) int {
	cutSong := a.silenceCutoff(a.cfg.SilenceSongTh, ampSong)
	cutRef := a.silenceCutoff(a.cfg.SilenceRefTh, ampRef)

	for i, amp := range ampSong {
		if amp < cutSong {
			for j := range sim[i] {
				sim[i][j] = 0
			}
		}
	}
	suppressed := 0
	for j, amp := range ampRef {
		if amp < cutRef {
			suppressed++
			for i := range sim {
				sim[i][j] = 0
			}
		}
	}
	return len(ampRef) - suppressed
}

// silenceCutoff resolves the amplitude below which a frame counts as
// silent: the explicit override when given, otherwise the configured
// percentile of the recording's own amplitude distribution.
func (a *Analyzer) silenceCutoff(explicit *float64, amp []float64) float64 {
	if explicit != nil {
		return *explicit
	}
	sorted := make([]float64, len(amp))
	copy(sorted, amp)
	sort.Float64s(sorted)
	return stat.Quantile(a.cfg.SilencePercentile/100, stat.LinInterp, sorted, nil)
}
