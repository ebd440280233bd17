package ahocorasick

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestNewReplacerValidation(t *testing.T) {
	tests := []struct {
		name         string
		patterns     [][]byte
		replacements [][]byte
		wantErr      error
		wantIndex    int
	}{
		{
			name:         "count_mismatch",
			patterns:     [][]byte{[]byte("a"), []byte("b")},
			replacements: [][]byte{[]byte("x")},
			wantErr:      ErrCountMismatch,
			wantIndex:    -1,
		},
		{
			name:         "empty_pattern",
			patterns:     [][]byte{[]byte("a"), {}},
			replacements: [][]byte{[]byte("x"), []byte("y")},
			wantErr:      ErrEmptyPattern,
			wantIndex:    1,
		},
		{
			name:         "duplicate_pattern",
			patterns:     [][]byte{[]byte("a"), []byte("b"), []byte("a")},
			replacements: [][]byte{[]byte("x"), []byte("y"), []byte("z")},
			wantErr:      ErrDuplicatePattern,
			wantIndex:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReplacer(tt.patterns, tt.replacements)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewReplacer error = %v, want %v", err, tt.wantErr)
			}
			var be *BuildError
			if !errors.As(err, &be) {
				t.Fatalf("NewReplacer error = %T, want *BuildError", err)
			}
			if be.Index != tt.wantIndex {
				t.Errorf("BuildError.Index = %d, want %d", be.Index, tt.wantIndex)
			}
		})
	}
}

func TestNewStringReplacerOddCount(t *testing.T) {
	_, err := NewStringReplacer("one", "two", "three")
	if !errors.Is(err, ErrCountMismatch) {
		t.Errorf("NewStringReplacer error = %v, want ErrCountMismatch", err)
	}
}

func TestMustStringReplacerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustStringReplacer with odd arguments did not panic")
		}
	}()
	MustStringReplacer("only-pattern")
}

func TestReplace(t *testing.T) {
	tests := []struct {
		oldnew []string
		input  string
		want   string
	}{
		{[]string{"fox", "bear"}, "The quick brown fox.", "The quick brown bear."},
		{[]string{"fox", "bear", "brown", "white", "quick", "slow"},
			"The quick brown fox.", "The slow white bear."},
		{[]string{"a", "bb"}, "banana", "bbbnbbnbb"},
		{[]string{"aa", ""}, "aaaa", ""},
		{[]string{"xyz", "X"}, "no occurrence", "no occurrence"},
		{[]string{"end", "END"}, "the end", "the END"},
		{[]string{"quick", "slow"}, "", ""},
	}
	for _, tt := range tests {
		r := MustStringReplacer(tt.oldnew...)
		if got := string(r.Replace([]byte(tt.input))); got != tt.want {
			t.Errorf("Replace(%q) with %v = %q, want %q",
				tt.input, tt.oldnew, got, tt.want)
		}
	}
}

func TestReplaceString(t *testing.T) {
	r := MustStringReplacer("cat", "dog")
	if got := r.ReplaceString("the cat sat"); got != "the dog sat" {
		t.Errorf("ReplaceString = %q, want %q", got, "the dog sat")
	}
}

func TestEmptyPatternSet(t *testing.T) {
	r, err := NewReplacer(nil, nil)
	if err != nil {
		t.Fatalf("NewReplacer(nil, nil): %v", err)
	}
	if got := r.ReplaceString("pass through"); got != "pass through" {
		t.Errorf("identity replace = %q", got)
	}
	if got := r.LongestPatternLen(); got != 0 {
		t.Errorf("LongestPatternLen() = %d, want 0", got)
	}
}

func TestAccessors(t *testing.T) {
	r := MustStringReplacer("ab", "1", "abcde", "2", "x", "3")
	if got := r.NumPatterns(); got != 3 {
		t.Errorf("NumPatterns() = %d, want 3", got)
	}
	if got := r.LongestPatternLen(); got != 5 {
		t.Errorf("LongestPatternLen() = %d, want 5", got)
	}
}

// TestConcurrentStreams runs many streams off one Replacer at once; the
// automaton and replacement table are read-only and shared, each stream
// carries its own buffering state.
func TestConcurrentStreams(t *testing.T) {
	r := MustStringReplacer("fox", "bear", "quick", "slow")
	input := strings.Repeat("a quick brown fox; ", 200)
	want := r.ReplaceString(input)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var sink strings.Builder
			if _, err := r.Copy(&sink, strings.NewReader(input)); err != nil {
				t.Errorf("Copy: %v", err)
				return
			}
			if sink.String() != want {
				t.Error("concurrent stream produced different output")
			}
		}()
	}
	wg.Wait()
}

func TestReplacerOwnsReplacements(t *testing.T) {
	repl := [][]byte{[]byte("new")}
	r, err := NewReplacer([][]byte{[]byte("old")}, repl)
	if err != nil {
		t.Fatal(err)
	}
	copy(repl[0], "XXX") // caller clobbers its slice after construction
	if got := r.ReplaceString("old"); got != "new" {
		t.Errorf("Replace after caller mutation = %q, want %q", got, "new")
	}
}
