package seq

import (
	"io"
	"iter"
)

// Of produces a sequence of its arguments.
func Of[T any](items ...T) *Lookahead[T] { return FromSlice(items) }

// FromSlice produces a sequence over the elements of a slice. The
// slice is not copied.
func FromSlice[T any](items []T) *Lookahead[T] {
	idx := 0
	return NewLookahead(func() (out T, _ error) {
		if idx >= len(items) {
			return out, io.EOF
		}
		out = items[idx]
		idx++
		return out, nil
	})
}

// FromSeq pulls from a native iterator. Closing the sequence stops
// the underlying iterator.
func FromSeq[T any](s iter.Seq[T]) *Lookahead[T] {
	next, stop := iter.Pull(s)
	return NewLookahead(func() (out T, _ error) {
		if v, ok := next(); ok {
			return v, nil
		}
		return out, io.EOF
	}, func() error { stop(); return nil })
}

// Pull adapts an iterator into a producer, for building one sequence
// on top of another. Each call returns the iterator's next element.
// At the end the producer returns the iterator's failure, when it
// records one, and otherwise io.EOF.
func Pull[T any](it Iterator[T]) Producer[T] {
	return func() (out T, _ error) {
		if it.HasNext() {
			if v, err := it.Next(); err == nil {
				return v, nil
			}
		}
		return out, End(it)
	}
}

// End returns the failure recorded by an iterator with an Err()
// method, or io.EOF.
func End[T any](it Iterator[T]) error {
	if f, ok := it.(failer); ok {
		if err := f.Err(); err != nil {
			return err
		}
	}
	return io.EOF
}

// CloserOf returns a function that closes the iterator, if it is an
// io.Closer, for use as a Lookahead closer.
func CloserOf[T any](it Iterator[T]) func() error {
	return func() error {
		if c, ok := it.(io.Closer); ok {
			return c.Close()
		}
		return nil
	}
}
