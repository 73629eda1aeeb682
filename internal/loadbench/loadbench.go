// Package loadbench orchestrates the cold compile+instantiate experiment.
// Trials within a variant run strictly one after another, each in its own
// isolated context; the two variants share nothing and run concurrently.
package loadbench

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"methbench/internal/gensrc"
	"methbench/internal/sandbox"
	"methbench/internal/stats"
)

// VariantReport carries the three distribution summaries for one variant:
// compile phase, instantiate phase, and their pairwise total. Durations are
// summarized in nanoseconds.
type VariantReport struct {
	Label       string        `json:"label"`
	Compile     stats.Summary `json:"compile"`
	Instantiate stats.Summary `json:"instantiate"`
	Total       stats.Summary `json:"total"`
}

// MeasureLoad runs trialCount sequential isolated trials for one variant and
// summarizes the resulting series. The first failed trial aborts the whole
// measurement; there are no retries and no partial results.
func MeasureLoad(ctx context.Context, variant gensrc.Variant, objectCount, trialCount int) (VariantReport, error) {
	slog.Info("starting load benchmark", "variant", variant, "objects", objectCount, "trials", trialCount)

	compile := make([]float64, 0, trialCount)
	instantiate := make([]float64, 0, trialCount)

	for trial := 0; trial < trialCount; trial++ {
		src := gensrc.Generate(variant, objectCount, trial)

		res, err := sandbox.Run(ctx, src, variant, trial, objectCount)
		if err != nil {
			return VariantReport{}, err
		}

		compile = append(compile, float64(res.Compile.Nanoseconds()))
		instantiate = append(instantiate, float64(res.Instantiate.Nanoseconds()))
		slog.Debug("trial complete", "variant", variant, "trial", trial,
			"compile", res.Compile, "instantiate", res.Instantiate)
	}

	// Total is derived per trial index, not from the summaries.
	total := make([]float64, trialCount)
	for i := range total {
		total[i] = compile[i] + instantiate[i]
	}

	report := VariantReport{Label: variant.String()}
	var err error
	if report.Compile, err = stats.SummarizeLabeled(variant.String()+"/compile", compile); err != nil {
		return VariantReport{}, err
	}
	if report.Instantiate, err = stats.SummarizeLabeled(variant.String()+"/instantiate", instantiate); err != nil {
		return VariantReport{}, err
	}
	if report.Total, err = stats.SummarizeLabeled(variant.String()+"/total", total); err != nil {
		return VariantReport{}, err
	}
	return report, nil
}

// Measure runs both variants concurrently and returns their reports in
// fixed variant order. A failure in either variant cancels the other.
func Measure(ctx context.Context, objectCount, trialCount int) ([]VariantReport, error) {
	reports := make([]VariantReport, len(gensrc.Variants))

	g, ctx := errgroup.WithContext(ctx)
	for i, variant := range gensrc.Variants {
		i, variant := i, variant
		g.Go(func() error {
			report, err := MeasureLoad(ctx, variant, objectCount, trialCount)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
