package ahocorasick

import (
	"io"

	"github.com/diverta/aho-corasick/stream"
)

// Copy streams src through the replacer into dst until the source is
// exhausted, then flushes the withheld tail. It returns the number of
// replaced bytes written to dst. Source failures surface as *SourceError,
// sink failures as *SinkError. Following io.Copy convention, dst is not
// closed; wrap dst in a Writer when close-on-finish is wanted.
//
// Copy is equivalent to manually wiring a Reader to dst, packaged as a
// single call.
func (r *Replacer) Copy(dst io.Writer, src io.Reader) (int64, error) {
	asm := stream.NewAssembler(r.m, r.repl)
	buf := make([]byte, defaultBufSize)
	var written int64

	forward := func(out []byte) error {
		if len(out) == 0 {
			return nil
		}
		n, err := dst.Write(out)
		written += int64(n)
		if err != nil {
			return &SinkError{Err: err}
		}
		return nil
	}

	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			out, err := asm.Feed(buf[:n])
			if err != nil {
				return written, err
			}
			if err := forward(out); err != nil {
				return written, err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, &SourceError{Err: rerr}
		}
	}

	out, err := asm.Finish()
	if err != nil {
		return written, err
	}
	if err := forward(out); err != nil {
		return written, err
	}
	return written, nil
}
