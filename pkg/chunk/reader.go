// Package chunk streams a reader in fixed-size blocks, optionally stopping
// after a declared number of bytes.
package chunk

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// DefaultBlockSize is the block size used when none is configured.
const DefaultBlockSize = 1024

const maxEmptyReads = 100

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("chunk: reader closed")

// Option configures a Reader.
type Option func(*Reader)

// WithLength bounds the total number of bytes read. Zero or a negative value
// reads until the source is exhausted.
func WithLength(n int64) Option {
	return func(r *Reader) {
		if n < 0 {
			n = 0
		}
		r.length = n
	}
}

// WithBlockSize sets the maximum chunk size. Non-positive values keep the
// default.
func WithBlockSize(n int) Option {
	return func(r *Reader) {
		if n > 0 {
			r.blockSize = n
		}
	}
}

// Reader yields successive chunks of an underlying source. It is not safe
// for concurrent use.
type Reader struct {
	src       io.Reader
	length    int64
	blockSize int
	count     int64
	closed    bool
}

// New wraps src.
func New(src io.Reader, options ...Option) *Reader {
	r := &Reader{
		src:       src,
		blockSize: DefaultBlockSize,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Count returns the number of bytes yielded so far.
func (r *Reader) Count() int64 { return r.count }

// Next returns the next chunk. It returns io.EOF once the source is exhausted
// or the declared length has been reached, and ErrClosed after Close. A chunk
// is never empty.
func (r *Reader) Next() ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if r.src == nil {
		return nil, io.EOF
	}

	size := int64(r.blockSize)
	if r.length > 0 {
		remaining := r.length - r.count
		if remaining <= 0 {
			return nil, io.EOF
		}
		size = min(size, remaining)
	}

	buf := make([]byte, size)
	for attempt := 0; attempt < maxEmptyReads; attempt++ {
		n, err := r.src.Read(buf)
		if n > 0 {
			r.count += int64(n)
			return buf[:n], nil
		}
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("chunk: read: %w", err)
		}
	}
	return nil, io.ErrNoProgress
}

// All iterates over the remaining chunks. Iteration stops at the end of the
// source; any other error is yielded once as the final element.
func (r *Reader) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			chunk, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(chunk, err) || err != nil {
				return
			}
		}
	}
}

// WriteTo copies the remaining chunks to w.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for chunk, err := range r.All() {
		if err != nil {
			return written, err
		}
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("chunk: write: %w", err)
		}
	}
	return written, nil
}

// Close releases the source. When the source implements io.Closer it is
// closed exactly once; subsequent calls return nil.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	src := r.src
	r.src = nil
	if closer, ok := src.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("chunk: close: %w", err)
		}
	}
	return nil
}
