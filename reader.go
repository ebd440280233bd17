package ahocorasick

import (
	"io"

	"github.com/diverta/aho-corasick/stream"
)

// defaultBufSize is the chunk size used when pulling from an underlying
// source, matching bufio's default.
const defaultBufSize = 4096

// Reader wraps an underlying io.Reader and yields the replaced byte
// stream. It pulls a new chunk from the source only when all previously
// produced output has been consumed, so it never reads further ahead than
// one chunk. When the source is exhausted the withheld tail is flushed,
// then Read reports io.EOF.
//
// A Reader is single-use and not safe for concurrent use.
type Reader struct {
	src    io.Reader
	asm    *stream.Assembler
	buf    []byte // source chunk buffer
	out    []byte // decided output not yet handed to the caller
	err    error  // sticky; io.EOF once the tail has been flushed
	srcEOF bool
}

// Reader returns a Reader streaming src through the replacer.
func (r *Replacer) Reader(src io.Reader) *Reader {
	return r.ReaderSize(src, defaultBufSize)
}

// ReaderSize is like Reader with an explicit source chunk size. Sizes
// below one fall back to the default.
func (r *Replacer) ReaderSize(src io.Reader, size int) *Reader {
	if size <= 0 {
		size = defaultBufSize
	}
	return &Reader{
		src: src,
		asm: stream.NewAssembler(r.m, r.repl),
		buf: make([]byte, size),
	}
}

// Read implements io.Reader. Source failures are wrapped in *SourceError
// and are sticky; output decided before the failure is still delivered
// first.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		if r.srcEOF {
			out, err := r.asm.Finish()
			if err != nil {
				r.err = err
				return 0, err
			}
			r.out = out
			r.err = io.EOF
			continue
		}
		n, err := r.src.Read(r.buf)
		if n > 0 {
			out, ferr := r.asm.Feed(r.buf[:n])
			if ferr != nil {
				r.err = ferr
				return 0, ferr
			}
			r.out = out
		}
		switch {
		case err == io.EOF:
			r.srcEOF = true
		case err != nil:
			r.err = &SourceError{Err: err}
		}
	}
	n := copy(p, r.out)
	r.out = r.out[n:]
	return n, nil
}
