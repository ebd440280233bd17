package stream

// safeEmitLimit returns the buffer offset below which bytes can no longer
// participate in a future match once the matcher has scanned to frontier.
// A match containing such a byte would have to start more than longest-1
// bytes before the frontier, and the matcher guarantees it would already
// have reported it. Pattern sets of length <= 1 carry no overlap risk.
func safeEmitLimit(frontier, longest int) int {
	if longest <= 1 {
		return frontier
	}
	limit := frontier - (longest - 1)
	if limit < 0 {
		limit = 0
	}
	return limit
}

// Cursor owns the working buffer for one logical stream and classifies its
// bytes into final spans by repeatedly consulting a Matcher. A cursor is
// exclusively owned by a single adapter; it is not safe for concurrent use.
type Cursor struct {
	m       Matcher
	longest int

	buf      []byte
	scanned  int // boundary between classified and unclassified bytes
	finished bool

	spans []Span // reused across passes
}

// NewCursor returns a cursor driving m over an initially empty buffer.
func NewCursor(m Matcher) *Cursor {
	return &Cursor{m: m, longest: m.LongestPatternLen()}
}

// Advance appends p to the working buffer and runs a matching pass. The
// returned spans are final; their offsets are valid until Compact is called.
// Bytes near the end of the buffer that could still extend into a match are
// withheld and decided by a later Advance or by Finish.
func (c *Cursor) Advance(p []byte) ([]Span, error) {
	if c.finished {
		return nil, ErrFinished
	}
	c.buf = append(c.buf, p...)
	return c.scan(false)
}

// Finish signals end of input and classifies everything still pending: a
// final pass commits any match that was withheld only because it touched
// the end of the buffer, and the remainder becomes verbatim output. The
// cursor accepts no further input; calling Advance or Finish again is a
// misuse reported as ErrFinished.
func (c *Cursor) Finish() ([]Span, error) {
	if c.finished {
		return nil, ErrFinished
	}
	c.finished = true
	return c.scan(true)
}

func (c *Cursor) scan(final bool) ([]Span, error) {
	spans := c.spans[:0]
	for c.scanned < len(c.buf) {
		m, err := c.m.FindNext(c.buf, c.scanned)
		if err != nil {
			return nil, err
		}
		if m == nil {
			break
		}
		if err := c.validate(m); err != nil {
			return nil, err
		}
		if !final && m.Start+c.longest > len(c.buf) {
			// A longer or preferred occurrence overlapping this match
			// could still arrive; leave the decision to a later pass.
			break
		}
		if m.Start > c.scanned {
			spans = append(spans, Span{Kind: Verbatim, Start: c.scanned, End: m.Start})
		}
		spans = append(spans, Span{Kind: Replaced, Pattern: m.Pattern, Start: m.Start, End: m.End})
		c.scanned = m.End
	}

	// Whatever the matcher left undecided is split at the safe-emit limit:
	// bytes below it are provably final verbatim output, the rest stays
	// buffered as a potential match prefix. At end of input there is no
	// more overlap risk and the whole tail is released.
	limit := len(c.buf)
	if !final {
		limit = safeEmitLimit(len(c.buf), c.longest)
	}
	if limit > c.scanned {
		spans = append(spans, Span{Kind: Verbatim, Start: c.scanned, End: limit})
		c.scanned = limit
	}

	c.spans = spans
	return spans, nil
}

func (c *Cursor) validate(m *Match) error {
	switch {
	case m.Pattern < 0:
		return &MatcherError{Match: *m, Reason: "negative pattern index"}
	case m.Start < c.scanned:
		return &MatcherError{Match: *m, Reason: "match starts before scan position"}
	case m.Start >= m.End:
		return &MatcherError{Match: *m, Reason: "empty or inverted range"}
	case m.End > len(c.buf):
		return &MatcherError{Match: *m, Reason: "range exceeds buffer"}
	}
	return nil
}

// Bytes returns the working-buffer bytes covered by s. The slice aliases
// the buffer and is valid until the next Advance, Finish or Compact.
func (c *Cursor) Bytes(s Span) []byte {
	return c.buf[s.Start:s.End]
}

// Compact drops the classified prefix of the working buffer, moving the
// pending tail to the front. Spans returned by earlier passes are
// invalidated. After compaction the buffer holds at most longest-1 bytes.
func (c *Cursor) Compact() {
	if c.scanned == 0 {
		return
	}
	n := copy(c.buf, c.buf[c.scanned:])
	c.buf = c.buf[:n]
	c.scanned = 0
}

// Buffered returns the current working-buffer length.
func (c *Cursor) Buffered() int {
	return len(c.buf)
}

// Pending returns the number of buffered bytes not yet classified.
func (c *Cursor) Pending() int {
	return len(c.buf) - c.scanned
}
