// Package timing is a small micro-benchmark loop for named operations. It
// owns warmup, scheduling, and sample collection; the operations themselves
// decide what one measured run means.
package timing

import (
	"context"
	"fmt"
	"time"
)

// DefaultWarmupRuns is how many runs per operation are discarded before
// sampling begins.
const DefaultWarmupRuns = 5

// DefaultMinRunTime is the measured wall-clock budget each operation must
// consume before the harness stops sampling it.
const DefaultMinRunTime = 2 * time.Second

// DefaultMaxRuns bounds sample collection for very fast operations.
const DefaultMaxRuns = 10000

// Op is one registered zero-argument operation. A run either succeeds or
// returns an error; an error aborts the whole harness run.
type Op struct {
	Name string
	Fn   func() error
}

// Harness runs registered operations round-robin: one measured run per
// operation per pass, so the operations share whatever machine-level noise
// occurs during the session instead of one arm absorbing all of it.
type Harness struct {
	WarmupRuns int
	MinRunTime time.Duration
	MaxRuns    int

	ops []Op
}

// New returns a Harness with the default warmup and budget settings.
func New() *Harness {
	return &Harness{
		WarmupRuns: DefaultWarmupRuns,
		MinRunTime: DefaultMinRunTime,
		MaxRuns:    DefaultMaxRuns,
	}
}

// Register adds a named operation. Registration order is report order.
func (h *Harness) Register(name string, fn func() error) {
	h.ops = append(h.ops, Op{Name: name, Fn: fn})
}

// Result holds the measured samples for one operation, in nanoseconds per
// run. Warmup runs are not included.
type Result struct {
	Name    string
	Samples []float64
}

// Run performs the warmup phase for every operation, then takes measured
// runs round-robin until each operation has consumed at least MinRunTime of
// measured wall clock (or hit MaxRuns). Results come back in registration
// order.
func (h *Harness) Run(ctx context.Context) ([]Result, error) {
	if len(h.ops) == 0 {
		return nil, fmt.Errorf("no operations registered")
	}

	for _, op := range h.ops {
		for i := 0; i < h.WarmupRuns; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := op.Fn(); err != nil {
				return nil, fmt.Errorf("warmup run of %s: %w", op.Name, err)
			}
		}
	}

	results := make([]Result, len(h.ops))
	elapsed := make([]time.Duration, len(h.ops))
	for i, op := range h.ops {
		results[i] = Result{Name: op.Name}
	}

	for {
		done := true
		for i, op := range h.ops {
			if elapsed[i] >= h.MinRunTime || len(results[i].Samples) >= h.MaxRuns {
				continue
			}
			done = false

			if err := ctx.Err(); err != nil {
				return nil, err
			}

			start := time.Now()
			err := op.Fn()
			d := time.Since(start)
			if err != nil {
				return nil, fmt.Errorf("measured run of %s: %w", op.Name, err)
			}

			elapsed[i] += d
			results[i].Samples = append(results[i].Samples, float64(d.Nanoseconds()))
		}
		if done {
			return results, nil
		}
	}
}
