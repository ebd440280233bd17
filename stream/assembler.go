package stream

// Assembler turns the spans decided by a Cursor into the externally visible
// output byte sequence: verbatim spans copy buffer bytes through, replaced
// spans substitute the table entry for their pattern. After rendering it
// compacts the cursor so working memory stays bounded by the longest
// pattern length regardless of total stream length.
//
// The replacement table is read-only for the lifetime of the stream and
// must have an entry for every pattern index the matcher can report.
type Assembler struct {
	cur  *Cursor
	repl [][]byte
	out  []byte // reused output buffer
}

// NewAssembler returns an assembler driving a fresh cursor over m.
func NewAssembler(m Matcher, replacements [][]byte) *Assembler {
	return &Assembler{cur: NewCursor(m), repl: replacements}
}

// Feed appends p to the stream and returns the newly decided output bytes.
// The returned slice is reused and valid only until the next Feed or
// Finish call. It may be empty even for non-empty input when everything
// is still withheld as a potential match prefix.
func (a *Assembler) Feed(p []byte) ([]byte, error) {
	spans, err := a.cur.Advance(p)
	if err != nil {
		return nil, err
	}
	return a.render(spans)
}

// Finish flushes the stream: any withheld tail is decided and rendered.
// The assembler accepts no further input afterwards.
func (a *Assembler) Finish() ([]byte, error) {
	spans, err := a.cur.Finish()
	if err != nil {
		return nil, err
	}
	return a.render(spans)
}

func (a *Assembler) render(spans []Span) ([]byte, error) {
	out := a.out[:0]
	for _, s := range spans {
		switch s.Kind {
		case Verbatim:
			out = append(out, a.cur.Bytes(s)...)
		case Replaced:
			if s.Pattern >= len(a.repl) {
				return nil, &MatcherError{
					Match:  Match{Pattern: s.Pattern, Start: s.Start, End: s.End},
					Reason: "pattern index outside replacement table",
				}
			}
			out = append(out, a.repl[s.Pattern]...)
		}
	}
	a.cur.Compact()
	a.out = out
	return out, nil
}

// Buffered returns the number of bytes currently held in the working
// buffer, i.e. input received but not yet resolved into output.
func (a *Assembler) Buffered() int {
	return a.cur.Buffered()
}
