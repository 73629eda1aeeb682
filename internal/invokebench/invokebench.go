// Package invokebench measures steady-state call cost of the two callable
// definition styles across a fixed in-process object pool.
package invokebench

import (
	"context"
	"fmt"

	"methbench/internal/errors"
	"methbench/internal/gensrc"
	"methbench/internal/stats"
	"methbench/internal/timing"
)

// methodEntry defines its callable as a method. The call reads the entry's
// own value field at call time.
type methodEntry struct {
	value int
}

func (e *methodEntry) Invoke() int { return e.value }

// closureEntry defines its callable as a function field capturing the value
// at construction. The call never touches the entry again.
type closureEntry struct {
	value  int
	invoke func() int
}

// Runner holds one pool per variant, built exactly once, plus the expected
// checksum for each. Pools are reused across all measured runs; nothing is
// reallocated between runs.
type Runner struct {
	cycleCount int

	methodPool  []*methodEntry
	closurePool []*closureEntry

	expectMethod  int64
	expectClosure int64
}

// NewRunner builds both pools and precomputes each variant's checksum from
// its own pool values: expected = sum(values) * cycleCount.
func NewRunner(objectCount, cycleCount int) (*Runner, error) {
	if objectCount <= 0 {
		return nil, fmt.Errorf("object count must be positive, got %d", objectCount)
	}
	if cycleCount <= 0 {
		return nil, fmt.Errorf("cycle count must be positive, got %d", cycleCount)
	}

	r := &Runner{
		cycleCount:  cycleCount,
		methodPool:  make([]*methodEntry, objectCount),
		closurePool: make([]*closureEntry, objectCount),
	}

	for i := 0; i < objectCount; i++ {
		r.methodPool[i] = &methodEntry{value: i}

		v := i
		r.closurePool[i] = &closureEntry{value: v, invoke: func() int { return v }}
	}

	for _, e := range r.methodPool {
		r.expectMethod += int64(e.value) * int64(cycleCount)
	}
	for _, e := range r.closurePool {
		r.expectClosure += int64(e.value) * int64(cycleCount)
	}

	return r, nil
}

// shorthandRun is one measured run of the shorthand-method pool: cycleCount
// passes over the pool, invoking every entry and accumulating the returns.
func (r *Runner) shorthandRun() error {
	var sum int64
	for c := 0; c < r.cycleCount; c++ {
		for _, e := range r.methodPool {
			sum += int64(e.Invoke())
		}
	}
	if sum != r.expectMethod {
		return errors.NewChecksumMismatchError(gensrc.ShorthandMethod.String(), r.expectMethod, sum)
	}
	return nil
}

func (r *Runner) closureRun() error {
	var sum int64
	for c := 0; c < r.cycleCount; c++ {
		for _, e := range r.closurePool {
			sum += int64(e.invoke())
		}
	}
	if sum != r.expectClosure {
		return errors.NewChecksumMismatchError(gensrc.ClosureProperty.String(), r.expectClosure, sum)
	}
	return nil
}

// RegisterOps hands both variants' timed closures to the harness, which owns
// warmup, interleaving, and sampling.
func (r *Runner) RegisterOps(h *timing.Harness) {
	h.Register(gensrc.ShorthandMethod.String(), r.shorthandRun)
	h.Register(gensrc.ClosureProperty.String(), r.closureRun)
}

// ExpectedChecksum returns the precomputed invariant for a variant.
func (r *Runner) ExpectedChecksum(variant gensrc.Variant) int64 {
	if variant == gensrc.ShorthandMethod {
		return r.expectMethod
	}
	return r.expectClosure
}

// VariantResult is one row of the invocation report.
type VariantResult struct {
	Variant gensrc.Variant `json:"variant"`
	Summary stats.Summary  `json:"summary"`
}

// Measure runs both variants through the harness and summarizes their
// per-run timings in nanoseconds. The first checksum mismatch or harness
// error aborts the whole measurement.
func (r *Runner) Measure(ctx context.Context, h *timing.Harness) ([]VariantResult, error) {
	r.RegisterOps(h)

	raw, err := h.Run(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]VariantResult, 0, len(raw))
	for _, res := range raw {
		summary, err := stats.SummarizeLabeled(res.Name, res.Samples)
		if err != nil {
			return nil, err
		}
		results = append(results, VariantResult{
			Variant: gensrc.Variant(res.Name),
			Summary: summary,
		})
	}
	return results, nil
}
