// Package sandbox runs one generated source unit per call inside a fresh
// interpreter. Nothing is shared between calls: no symbol space, no
// compilation cache, no warmed execution paths. Each trial therefore pays a
// genuine cold compile, which is the quantity under measurement.
package sandbox

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/traefik/yaegi/interp"

	"methbench/internal/errors"
	"methbench/internal/gensrc"
)

// TrialResult carries the two timed phases of one isolated trial. Both are
// non-negative; context setup and teardown are outside both windows.
type TrialResult struct {
	Compile     time.Duration
	Instantiate time.Duration
}

type outcome struct {
	result TrialResult
	err    error
}

// Run executes sourceText in an isolated context and reports the compile and
// instantiate durations. The interpreter lives on its own goroutine and only
// the two durations (or an error) cross back over a channel. The executed
// unit must bind its pool to a `pool` global holding a slice of exactly
// expectedCount entries, otherwise the trial fails with a
// ShapeMismatchError and no durations are reported.
//
// There is no retry: any compile or execution failure is wrapped with the
// variant and trial identity and returned as-is.
func Run(ctx context.Context, sourceText string, variant gensrc.Variant, trialIndex, expectedCount int) (TrialResult, error) {
	ch := make(chan outcome, 1)
	go func() {
		ch <- execute(sourceText, variant, trialIndex, expectedCount)
	}()

	select {
	case <-ctx.Done():
		// The interpreter cannot be interrupted mid-run; the goroutine
		// leaks until its trial finishes, and the buffered channel lets it
		// deliver unobserved. Tolerable in a one-shot process.
		return TrialResult{}, ctx.Err()
	case out := <-ch:
		return out.result, out.err
	}
}

func execute(sourceText string, variant gensrc.Variant, trialIndex, expectedCount int) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = outcome{err: fmt.Errorf("%s trial %d: panic in isolated run: %v", variant, trialIndex, r)}
		}
	}()

	i := interp.New(interp.Options{})

	start := time.Now()
	prog, err := i.Compile(sourceText)
	compile := time.Since(start)
	if err != nil {
		return outcome{err: fmt.Errorf("%s trial %d: compile: %w", variant, trialIndex, err)}
	}

	start = time.Now()
	_, err = i.Execute(prog)
	instantiate := time.Since(start)
	if err != nil {
		return outcome{err: fmt.Errorf("%s trial %d: instantiate: %w", variant, trialIndex, err)}
	}

	// The unit ends in `var pool = build()`, so the constructed pool is
	// read back from the interpreter's symbol space, outside both timed
	// windows.
	pool, ok := i.Globals()["pool"]
	if !ok {
		return outcome{err: fmt.Errorf("%s trial %d: executed unit did not bind a pool", variant, trialIndex)}
	}
	if pool.Kind() == reflect.Interface {
		pool = pool.Elem()
	}
	if pool.Kind() != reflect.Slice {
		return outcome{err: fmt.Errorf("%s trial %d: result is not a pool slice (got %s)", variant, trialIndex, pool.Kind())}
	}
	if pool.Len() != expectedCount {
		return outcome{err: errors.NewShapeMismatchError(variant.String(), trialIndex, expectedCount, pool.Len())}
	}

	return outcome{result: TrialResult{Compile: compile, Instantiate: instantiate}}
}
