package ahocorasick

import (
	ac "github.com/coregx/ahocorasick"

	"github.com/diverta/aho-corasick/stream"
)

// automaton adapts the coregx Aho-Corasick automaton to the stream.Matcher
// contract. The automaton reports offsets only, so pattern identity is
// recovered by looking the matched bytes up in the id table built alongside
// it; for a non-overlapping match the range always spells out exactly one
// of the added patterns.
//
// The adapter is read-only after construction and safe to share across any
// number of concurrent streams.
type automaton struct {
	auto    *ac.Automaton // nil for an empty pattern set
	ids     map[string]int
	longest int
}

func newAutomaton(patterns [][]byte) (*automaton, error) {
	a := &automaton{ids: make(map[string]int, len(patterns))}
	if len(patterns) == 0 {
		return a, nil
	}
	builder := ac.NewBuilder()
	for i, p := range patterns {
		if len(p) == 0 {
			return nil, &BuildError{Index: i, Err: ErrEmptyPattern}
		}
		if _, dup := a.ids[string(p)]; dup {
			return nil, &BuildError{Index: i, Err: ErrDuplicatePattern}
		}
		a.ids[string(p)] = i
		if len(p) > a.longest {
			a.longest = len(p)
		}
		builder.AddPattern(p)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &BuildError{Index: -1, Err: err}
	}
	a.auto = auto
	return a, nil
}

// FindNext implements stream.Matcher.
func (a *automaton) FindNext(buf []byte, from int) (*stream.Match, error) {
	if a.auto == nil || from >= len(buf) {
		return nil, nil
	}
	m := a.auto.Find(buf, from)
	if m == nil {
		return nil, nil
	}
	id, ok := a.ids[string(buf[m.Start:m.End])]
	if !ok {
		return nil, &stream.MatcherError{
			Match:  stream.Match{Pattern: -1, Start: m.Start, End: m.End},
			Reason: "matched bytes spell no known pattern",
		}
	}
	return &stream.Match{Pattern: id, Start: m.Start, End: m.End}, nil
}

// LongestPatternLen implements stream.Matcher.
func (a *automaton) LongestPatternLen() int {
	return a.longest
}
