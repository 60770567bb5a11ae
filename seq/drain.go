package seq

import (
	"io"
	"iter"

	"github.com/gilch/saccharin/ers"
)

type failer interface{ Err() error }

// Each calls fn for every remaining element of the iterator. It
// returns nil when the iterator is exhausted or fn returns io.EOF or
// ers.ErrCurrentOpAbort, and otherwise the first error from fn. When
// the iterator records a failure (an Err() method), that failure is
// returned at exhaustion.
//
// Each does not close the iterator.
func Each[T any](it Iterator[T], fn func(T) error) error {
	for it.HasNext() {
		v, err := it.Next()
		if err == nil {
			err = fn(v)
		}

		switch {
		case err == nil:
			continue
		case ers.IsExhausted(err):
			return nil
		default:
			return err
		}
	}

	if f, ok := it.(failer); ok {
		return f.Err()
	}
	return nil
}

// All returns a single-use, range-over-func view of the iterator.
// When the loop ends, for any reason, the iterator is closed if it
// implements io.Closer; breaking out of a loop over a generator-backed
// sequence therefore releases its worker.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if c, ok := it.(io.Closer); ok {
			defer c.Close()
		}

		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the iterator into a slice and closes it. The error
// is the iterator's failure, if any.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T
	err := Each(it, func(v T) error { out = append(out, v); return nil })

	if c, ok := it.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return out, err
}

// Take reads at most n elements from the iterator, which is left open
// so that it may be consumed further. Use Take to bound an infinite
// sequence.
func Take[T any](it Iterator[T], n int) []T {
	out := make([]T, 0, max(n, 0))
	for len(out) < n && it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}
