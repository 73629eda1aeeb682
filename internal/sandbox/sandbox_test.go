package sandbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"methbench/internal/errors"
	"methbench/internal/gensrc"
)

func TestRunReportsBothDurations(t *testing.T) {
	for _, variant := range gensrc.Variants {
		t.Run(variant.String(), func(t *testing.T) {
			src := gensrc.Generate(variant, 20, 0)

			res, err := Run(context.Background(), src, variant, 0, 20)
			require.NoError(t, err)
			assert.Greater(t, res.Compile.Nanoseconds(), int64(0))
			assert.Greater(t, res.Instantiate.Nanoseconds(), int64(0))
		})
	}
}

func TestRunShapeMismatch(t *testing.T) {
	// Generated for 10 entries, executor told to expect 11.
	src := gensrc.Generate(gensrc.ShorthandMethod, 10, 4)

	res, err := Run(context.Background(), src, gensrc.ShorthandMethod, 4, 11)
	require.Error(t, err)

	var shape *errors.ShapeMismatchError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "shorthand-method", shape.Variant)
	assert.Equal(t, 4, shape.Trial)
	assert.Equal(t, 11, shape.Want)
	assert.Equal(t, 10, shape.Got)

	// No durations on failure.
	assert.Zero(t, res.Compile)
	assert.Zero(t, res.Instantiate)
}

func TestRunCompileErrorCarriesTrialIdentity(t *testing.T) {
	_, err := Run(context.Background(), "func build( {", gensrc.ClosureProperty, 7, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closure-property")
	assert.Contains(t, err.Error(), "trial 7")
}

func TestRunMissingPoolBinding(t *testing.T) {
	_, err := Run(context.Background(), "var other = 3", gensrc.ShorthandMethod, 0, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not bind a pool")
}

func TestRunNonSliceResult(t *testing.T) {
	_, err := Run(context.Background(), "var pool = 3", gensrc.ShorthandMethod, 0, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a pool slice")
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := gensrc.Generate(gensrc.ShorthandMethod, 5, 0)
	_, err := Run(ctx, src, gensrc.ShorthandMethod, 0, 5)
	assert.ErrorIs(t, err, context.Canceled)
}
