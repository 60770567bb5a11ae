package saccharin

import (
	"fmt"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/seq"
)

// Reduce applies fn cumulatively to init and each element of it, in
// order, and returns the final accumulation. An empty input yields
// init. The result type need not match the element type.
//
// Reduce drains and closes it; an input failure is returned alongside
// the accumulation so far.
func Reduce[T, R any](it seq.Iterator[T], fn func(R, T) R, init R) (out R, err error) {
	defer release(it, &err)
	out = init
	err = seq.Each(it, func(v T) error { out = fn(out, v); return nil })
	return out, err
}

// ReduceFirst is Reduce seeded with the first element of it. An empty
// input is an error wrapping ers.ErrInvalidInput.
func ReduceFirst[T any](it seq.Iterator[T], op func(T, T) T) (out T, err error) {
	defer release(it, &err)
	first, nerr := it.Next()
	if nerr != nil {
		if err := upstream(it); err != nil {
			return out, err
		}
		return out, fmt.Errorf("reduce of empty sequence with no initial value: %w", ers.ErrInvalidInput)
	}
	out = first
	err = seq.Each(it, func(v T) error { out = op(out, v); return nil })
	return out, err
}

// All reports whether no element of it is false. It stops at the
// first false element, so it terminates on an infinite input that
// contains one. An empty input is true.
func All(it seq.Iterator[bool]) (ok bool, err error) {
	defer release(it, &err)
	ok = true
	err = seq.Each(it, func(b bool) error {
		if !b {
			ok = false
			return ers.ErrCurrentOpAbort
		}
		return nil
	})
	return ok, err
}

// Any reports whether some element of it is true, stopping at the
// first one. An empty input is false.
func Any(it seq.Iterator[bool]) (ok bool, err error) {
	defer release(it, &err)
	err = seq.Each(it, func(b bool) error {
		if b {
			ok = true
			return ers.ErrCurrentOpAbort
		}
		return nil
	})
	return ok, err
}
