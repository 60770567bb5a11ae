package fn

import (
	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/seq"
)

// Handler consumes a value for its side effects.
type Handler[T any] func(T)

// MakeHandler converts a function into a Handler.
func MakeHandler[T any](h func(T)) Handler[T] { return h }

// Skip returns a handler that ignores values for which the predicate
// holds.
func (h Handler[T]) Skip(p Predicate[T]) Handler[T] {
	return func(v T) {
		if !p(v) {
			h(v)
		}
	}
}

// Join returns a handler that calls this handler and then the next.
func (h Handler[T]) Join(next Handler[T]) Handler[T] { return func(v T) { h(v); next(v) } }

// RecoverPanic calls the handler, converting a panic into an error
// rooted in ers.ErrRecoveredPanic.
func (h Handler[T]) RecoverPanic(v T) error {
	return ers.WithRecoverCall(func() error { h(v); return nil })
}

// Drain calls the handler for every remaining element of the
// iterator and closes it. The error is the iterator's failure, a
// panic from the handler, or an error closing the iterator.
func (h Handler[T]) Drain(it seq.Iterator[T]) error {
	err := seq.Each(it, h.RecoverPanic)
	if cerr := seq.CloserOf(it)(); err == nil {
		err = cerr
	}
	return err
}
