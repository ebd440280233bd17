// Package stream implements the chunk-driven match-and-replace core used by
// the streaming adapters in the root package.
//
// The package coordinates three pieces:
//   - Matcher: the externally owned multi-pattern automaton (consulted, never mutated)
//   - Cursor: owns the working buffer and turns incoming chunks into final,
//     never-revisited spans (verbatim runs and replaced matches)
//   - Assembler: renders spans into output bytes and compacts the working
//     buffer so memory stays bounded by the longest pattern length
//
// Chunking never changes the produced bytes: feeding an input one byte at a
// time yields output identical to a single whole-buffer pass.
package stream

import (
	"errors"
	"fmt"
)

// Match is a single non-overlapping pattern occurrence inside a buffer.
// Start and End are absolute offsets into the scanned buffer, half-open.
type Match struct {
	Pattern int
	Start   int
	End     int
}

// Matcher is the multi-pattern automaton contract the streaming core drives.
//
// Implementations must guarantee that once a scan from a given offset has
// covered LongestPatternLen bytes without starting a match, no later call
// with the same offset and more appended input will report a match starting
// inside the covered region before the reported one.
type Matcher interface {
	// FindNext returns the next match whose range lies at or after from,
	// or (nil, nil) when no further match can be determined in buf.
	FindNext(buf []byte, from int) (*Match, error)

	// LongestPatternLen returns the length in bytes of the longest pattern
	// the matcher can report. It bounds how many trailing bytes of a buffer
	// may still extend into a match.
	LongestPatternLen() int
}

// SpanKind discriminates the two decided-span variants.
type SpanKind uint8

const (
	// Verbatim marks a span whose buffer bytes pass through unchanged.
	Verbatim SpanKind = iota
	// Replaced marks a span substituted by the replacement for Pattern.
	Replaced
)

// Span is a final classification of a working-buffer range. Once returned
// from a Cursor pass it is never revisited or retracted. Offsets are valid
// until the cursor is compacted.
type Span struct {
	Kind    SpanKind
	Pattern int // replacement table index, meaningful when Kind == Replaced
	Start   int
	End     int
}

// ErrFinished reports a misuse of an already-finished cursor: advancing it
// or finishing it a second time.
var ErrFinished = errors.New("stream: cursor already finished")

// MatcherError reports an internal inconsistency in the matching engine,
// such as an out-of-range or non-monotonic match. It is unrecoverable; the
// stream operation that observed it is dead.
type MatcherError struct {
	Match  Match
	Reason string
}

// Error implements the error interface.
func (e *MatcherError) Error() string {
	return fmt.Sprintf("stream: matcher reported inconsistent match [%d:%d) pattern %d: %s",
		e.Match.Start, e.Match.End, e.Match.Pattern, e.Reason)
}
