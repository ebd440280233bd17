package ahocorasick

import (
	"errors"
	"fmt"
)

// Construction and misuse errors.
var (
	// ErrClosed is returned when a stream adapter is used after Close,
	// or closed a second time.
	ErrClosed = errors.New("ahocorasick: stream already closed")

	// ErrCountMismatch indicates the pattern and replacement lists do
	// not pair up one-to-one.
	ErrCountMismatch = errors.New("replacement count does not match pattern count")

	// ErrEmptyPattern indicates an empty pattern, which can never match
	// a byte range and is rejected at construction.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrDuplicatePattern indicates the same pattern appears twice,
	// which would make its replacement ambiguous.
	ErrDuplicatePattern = errors.New("duplicate pattern")
)

// BuildError reports a failure to construct a Replacer.
type BuildError struct {
	Index int // position in the pattern list, -1 when not tied to one
	Err   error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("ahocorasick: pattern %d: %v", e.Index, e.Err)
	}
	return "ahocorasick: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error {
	return e.Err
}

// SourceError wraps a failure of the underlying reader a stream pulls from.
// The stream operation that observed it is terminated; whether the source
// is worth retrying is the caller's call.
type SourceError struct {
	Err error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return "ahocorasick: source: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// SinkError wraps a failure of the underlying writer a stream forwards to.
type SinkError struct {
	Err error
}

// Error implements the error interface.
func (e *SinkError) Error() string {
	return "ahocorasick: sink: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *SinkError) Unwrap() error {
	return e.Err
}
