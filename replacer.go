// Package ahocorasick provides streaming multi-pattern search and replace
// over byte streams, built on an Aho-Corasick automaton.
//
// A Replacer is compiled once from a fixed set of patterns and their
// replacements, then reused across any number of inputs and any number of
// concurrent streams. Inputs can be replaced in one shot or streamed
// through io.Reader / io.Writer adapters that never materialize the whole
// input: working memory stays proportional to the longest pattern, and a
// match is never split across two emitted chunks regardless of how the
// input is chunked.
//
// Basic usage:
//
//	r, err := ahocorasick.NewStringReplacer(
//	    "quick", "slow",
//	    "brown", "white",
//	    "fox", "bear",
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Whole-buffer replace
//	out := r.ReplaceString("The quick brown fox.")
//	// out = "The slow white bear."
//
// Streaming usage:
//
//	// Pull: wrap a source, read already-replaced bytes
//	resp, _ := http.Get(url)
//	io.Copy(os.Stdout, r.Reader(resp.Body))
//
//	// Push: wrap a sink, write raw bytes into it
//	w := r.Writer(f)
//	w.Write(chunk)
//	w.Close() // flushes any withheld tail
//
// The streaming adapters produce output byte-identical to a whole-buffer
// replace over the concatenated input, for any chunking of that input.
package ahocorasick

// Replacer is a compiled pattern set with its replacement table. It is
// read-only after construction and safe for concurrent use; each stream
// adapter it creates carries its own private buffering state.
type Replacer struct {
	m    *automaton
	repl [][]byte
}

// NewReplacer compiles patterns into an automaton and pairs each pattern
// with the replacement at the same index. Patterns must be non-empty and
// distinct, and the two lists must have equal length; violations are
// reported as a *BuildError.
func NewReplacer(patterns, replacements [][]byte) (*Replacer, error) {
	if len(patterns) != len(replacements) {
		return nil, &BuildError{Index: -1, Err: ErrCountMismatch}
	}
	m, err := newAutomaton(patterns)
	if err != nil {
		return nil, err
	}

	// Own the table: callers are free to reuse their slices.
	repl := make([][]byte, len(replacements))
	for i, r := range replacements {
		repl[i] = append([]byte(nil), r...)
	}
	return &Replacer{m: m, repl: repl}, nil
}

// NewStringReplacer builds a Replacer from a list of pattern, replacement
// string pairs, in the manner of strings.NewReplacer:
//
//	r, err := ahocorasick.NewStringReplacer("http://", "https://")
func NewStringReplacer(oldnew ...string) (*Replacer, error) {
	if len(oldnew)%2 != 0 {
		return nil, &BuildError{Index: -1, Err: ErrCountMismatch}
	}
	patterns := make([][]byte, 0, len(oldnew)/2)
	replacements := make([][]byte, 0, len(oldnew)/2)
	for i := 0; i < len(oldnew); i += 2 {
		patterns = append(patterns, []byte(oldnew[i]))
		replacements = append(replacements, []byte(oldnew[i+1]))
	}
	return NewReplacer(patterns, replacements)
}

// MustStringReplacer is like NewStringReplacer but panics on error. Useful
// for pattern sets known to be valid at compile time.
func MustStringReplacer(oldnew ...string) *Replacer {
	r, err := NewStringReplacer(oldnew...)
	if err != nil {
		panic("ahocorasick: NewStringReplacer: " + err.Error())
	}
	return r
}

// Replace returns a copy of src with every non-overlapping pattern
// occurrence substituted by its replacement. This is the synchronous
// whole-buffer entry point; the streaming adapters produce identical
// output for the same concatenated input.
func (r *Replacer) Replace(src []byte) []byte {
	out := make([]byte, 0, len(src))
	last := 0
	for {
		m, err := r.m.FindNext(src, last)
		if err != nil {
			// The id table covers every pattern the automaton was
			// built from; a miss means corrupted automaton state.
			panic(err)
		}
		if m == nil {
			break
		}
		out = append(out, src[last:m.Start]...)
		out = append(out, r.repl[m.Pattern]...)
		last = m.End
	}
	return append(out, src[last:]...)
}

// ReplaceString is like Replace but operates on a string.
func (r *Replacer) ReplaceString(s string) string {
	return string(r.Replace([]byte(s)))
}

// NumPatterns returns the number of compiled patterns.
func (r *Replacer) NumPatterns() int {
	return len(r.repl)
}

// LongestPatternLen returns the length in bytes of the longest pattern.
// Streaming adapters withhold up to LongestPatternLen-1 trailing bytes
// until more input (or end of stream) proves they are not a match prefix.
func (r *Replacer) LongestPatternLen() int {
	return r.m.longest
}
