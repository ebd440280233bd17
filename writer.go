package ahocorasick

import (
	"io"

	"github.com/diverta/aho-corasick/stream"
)

// Writer wraps an underlying io.Writer and forwards the replaced byte
// stream to it. Each Write runs one matching pass and immediately forwards
// everything it decided; the only bytes held back are the up to
// LongestPatternLen-1 trailing bytes that could still be a match prefix.
// Close flushes those and, when the underlying writer is an io.Closer,
// closes it too.
//
// A Writer is single-use and not safe for concurrent use.
type Writer struct {
	dst    io.Writer
	asm    *stream.Assembler
	err    error // sticky stream failure
	closed bool
}

// Writer returns a Writer streaming its input through the replacer into dst.
func (r *Replacer) Writer(dst io.Writer) *Writer {
	return &Writer{dst: dst, asm: stream.NewAssembler(r.m, r.repl)}
}

// Write implements io.Writer. The input is always either fully consumed or
// not at all: on success n equals len(p), even when every byte is still
// withheld as a potential match prefix. A sink failure is reported as a
// *SinkError with n == len(p), since the input was already consumed into
// the working buffer; the failure is sticky and the writer is dead.
//
// Writing after Close is a misuse reported as ErrClosed.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	out, err := w.asm.Feed(p)
	if err != nil {
		w.err = err
		return 0, err
	}
	if err := w.forward(out); err != nil {
		return len(p), err
	}
	return len(p), nil
}

// Close flushes the withheld tail as verbatim output, forwards it, and
// delegates to the underlying writer's Close when it has one. Calling
// Close a second time is a misuse reported as ErrClosed, not a silent
// no-op that could duplicate the flush.
func (w *Writer) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	if w.err != nil {
		return w.err
	}
	out, err := w.asm.Finish()
	if err != nil {
		w.err = err
		return err
	}
	if err := w.forward(out); err != nil {
		return err
	}
	if c, ok := w.dst.(io.Closer); ok {
		if err := c.Close(); err != nil {
			w.err = &SinkError{Err: err}
			return w.err
		}
	}
	return nil
}

func (w *Writer) forward(out []byte) error {
	if len(out) == 0 {
		return nil
	}
	if _, err := w.dst.Write(out); err != nil {
		w.err = &SinkError{Err: err}
		return w.err
	}
	return nil
}
