package loadbench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"methbench/internal/gensrc"
)

func TestMeasureLoadReportShape(t *testing.T) {
	const trials = 3

	report, err := MeasureLoad(context.Background(), gensrc.ShorthandMethod, 5, trials)
	require.NoError(t, err)

	assert.Equal(t, "shorthand-method", report.Label)
	assert.Equal(t, trials, report.Compile.SampleCount)
	assert.Equal(t, trials, report.Instantiate.SampleCount)
	assert.Equal(t, trials, report.Total.SampleCount)

	assert.Greater(t, report.Compile.Mean, 0.0)
	assert.Greater(t, report.Instantiate.Mean, 0.0)

	// Total derives from pairwise sums, so its mean is the sum of means.
	assert.InDelta(t, report.Compile.Mean+report.Instantiate.Mean, report.Total.Mean, 1e-6)
}

func TestMeasureLoadStructurallyRepeatable(t *testing.T) {
	// Timing values differ between runs; shape must not.
	a, err := MeasureLoad(context.Background(), gensrc.ClosureProperty, 5, 2)
	require.NoError(t, err)
	b, err := MeasureLoad(context.Background(), gensrc.ClosureProperty, 5, 2)
	require.NoError(t, err)

	assert.Equal(t, a.Label, b.Label)
	assert.Equal(t, a.Compile.SampleCount, b.Compile.SampleCount)
	assert.Equal(t, a.Instantiate.SampleCount, b.Instantiate.SampleCount)
	assert.Equal(t, a.Total.SampleCount, b.Total.SampleCount)
}

func TestMeasureBothVariants(t *testing.T) {
	reports, err := Measure(context.Background(), 5, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "shorthand-method", reports[0].Label)
	assert.Equal(t, "closure-property", reports[1].Label)
}

func TestMeasureCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Measure(ctx, 5, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
