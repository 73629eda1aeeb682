package stats

import (
	"math"
	"sort"

	"methbench/internal/errors"
)

// Summary is the distribution fingerprint of one sample series.
// It is recomputed from scratch for every series, never updated in place.
type Summary struct {
	SampleCount int     `json:"sample_count"`
	Mean        float64 `json:"mean"`
	Median      float64 `json:"median"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	StdDev      float64 `json:"std_dev"`
	StdErr      float64 `json:"std_err"`
	RelStdDev   float64 `json:"rel_std_dev"`
}

// Summarize computes a Summary for a non-empty sample series.
// The input slice is not modified; sorting happens on a copy.
//
// Median uses the lower-median convention (sorted[n/2], no interpolation)
// and variance is the population variance (divisor n). RelStdDev divides by
// the mean and is allowed to propagate Inf or NaN for a zero mean; callers
// render it as-is rather than treating it as a failure.
func Summarize(samples []float64) (Summary, error) {
	return SummarizeLabeled("", samples)
}

// SummarizeLabeled is Summarize with a series label attached to the
// empty-set error for diagnostics.
func SummarizeLabeled(label string, samples []float64) (Summary, error) {
	n := len(samples)
	if n == 0 {
		return Summary{}, errors.NewEmptySampleSetError(label)
	}

	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(n)

	sqDev := 0.0
	for _, s := range samples {
		d := s - mean
		sqDev += d * d
	}
	variance := sqDev / float64(n)
	stdDev := math.Sqrt(variance)

	return Summary{
		SampleCount: n,
		Mean:        mean,
		Median:      sorted[n/2],
		Min:         sorted[0],
		Max:         sorted[n-1],
		StdDev:      stdDev,
		StdErr:      stdDev / math.Sqrt(float64(n)),
		RelStdDev:   stdDev / mean,
	}, nil
}
