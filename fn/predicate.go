// Package fn holds the function contracts that combinators accept,
// with methods that compose them and apply them lazily to sequences.
package fn

import (
	"github.com/gilch/saccharin/seq"
)

// Predicate tests a single value.
type Predicate[T any] func(T) bool

// MakePredicate converts a function into a Predicate.
func MakePredicate[T any](p func(T) bool) Predicate[T] { return p }

// Test evaluates the predicate.
func (p Predicate[T]) Test(v T) bool { return p(v) }

// Negate returns the predicate's complement.
func (p Predicate[T]) Negate() Predicate[T] { return func(v T) bool { return !p(v) } }

// And returns a predicate that holds when this predicate and every one
// of the others hold, evaluated left to right and short-circuiting.
// Nil predicates are ignored.
func (p Predicate[T]) And(others ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, op := range append([]Predicate[T]{p}, others...) {
			if op != nil && !op(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that holds when this predicate or any of the
// others hold, evaluated left to right and short-circuiting. Nil
// predicates are ignored.
func (p Predicate[T]) Or(others ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, op := range append([]Predicate[T]{p}, others...) {
			if op != nil && op(v) {
				return true
			}
		}
		return false
	}
}

// Filter lazily selects the elements of the iterator for which the
// predicate holds. Rejected elements are skipped in a loop, so long
// runs of them are safe. Closing the result closes the iterator.
func (p Predicate[T]) Filter(it seq.Iterator[T]) *seq.Lookahead[T] {
	next := seq.Pull(it)
	return seq.NewLookahead(func() (T, error) {
		for {
			v, err := next()
			if err != nil || p(v) {
				return v, err
			}
		}
	}, seq.CloserOf(it))
}
