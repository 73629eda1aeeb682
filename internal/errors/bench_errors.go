package errors

import "fmt"

// ConfigError represents an invalid configuration input discovered at startup.
type ConfigError struct {
	Key   string
	Value string
	Cause string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for %s=%q: %s", e.Key, e.Value, e.Cause)
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, value, cause string) *ConfigError {
	return &ConfigError{Key: key, Value: value, Cause: cause}
}

// ShapeMismatchError reports that an isolated trial returned a pool of the
// wrong size. It carries the variant and trial identity for diagnostics.
type ShapeMismatchError struct {
	Variant string
	Trial   int
	Want    int
	Got     int
}

// Error implements the error interface
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch in %s trial %d: want %d entries, got %d", e.Variant, e.Trial, e.Want, e.Got)
}

// NewShapeMismatchError creates a new ShapeMismatchError
func NewShapeMismatchError(variant string, trial, want, got int) *ShapeMismatchError {
	return &ShapeMismatchError{Variant: variant, Trial: trial, Want: want, Got: got}
}

// EmptySampleSetError reports a request for statistics on zero samples.
// This is a programming-contract violation, not a measurement outcome.
type EmptySampleSetError struct {
	Label string
}

// Error implements the error interface
func (e *EmptySampleSetError) Error() string {
	if e.Label == "" {
		return "cannot summarize an empty sample set"
	}
	return fmt.Sprintf("cannot summarize empty sample set %q", e.Label)
}

// NewEmptySampleSetError creates a new EmptySampleSetError
func NewEmptySampleSetError(label string) *EmptySampleSetError {
	return &EmptySampleSetError{Label: label}
}

// ChecksumMismatchError reports that a measured invocation run produced an
// aggregate diverging from the precomputed expectation. It indicates a
// correctness bug in pool construction or in the invocation loop.
type ChecksumMismatchError struct {
	Variant string
	Want    int64
	Got     int64
}

// Error implements the error interface
func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: want %d, got %d", e.Variant, e.Want, e.Got)
}

// NewChecksumMismatchError creates a new ChecksumMismatchError
func NewChecksumMismatchError(variant string, want, got int64) *ChecksumMismatchError {
	return &ChecksumMismatchError{Variant: variant, Want: want, Got: got}
}
