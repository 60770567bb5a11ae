package fn

import (
	"sync"

	"github.com/gilch/saccharin/seq"
)

// Function converts a value of one type into another.
type Function[I, O any] func(I) O

// MakeFunction converts a function into a Function.
func MakeFunction[I, O any](f func(I) O) Function[I, O] { return f }

// Identity returns a function that returns its input.
func Identity[T any]() Function[T, T] { return func(v T) T { return v } }

// Apply calls the function.
func (f Function[I, O]) Apply(in I) O { return f(in) }

// If returns a function that is only called when the predicate holds
// for its input; otherwise it returns the zero value.
func (f Function[I, O]) If(p Predicate[I]) Function[I, O] {
	return func(in I) (out O) {
		if p(in) {
			out = f(in)
		}
		return out
	}
}

// PreHook returns a function that runs the hook before each call.
func (f Function[I, O]) PreHook(hook func()) Function[I, O] {
	return func(in I) O { hook(); return f(in) }
}

// Lock returns a function that serializes calls with a new mutex.
func (f Function[I, O]) Lock() Function[I, O] { return f.WithLock(&sync.Mutex{}) }

// WithLock returns a function that holds the mutex for each call.
func (f Function[I, O]) WithLock(mu *sync.Mutex) Function[I, O] {
	return func(in I) O { mu.Lock(); defer mu.Unlock(); return f(in) }
}

// Map lazily applies the function to each element of the iterator.
// Closing the result closes the iterator.
func (f Function[I, O]) Map(it seq.Iterator[I]) *seq.Lookahead[O] {
	next := seq.Pull(it)
	return seq.NewLookahead(func() (out O, _ error) {
		v, err := next()
		if err != nil {
			return out, err
		}
		return f(v), nil
	}, seq.CloserOf(it))
}

// Compose returns a function that applies the first function and then
// the second.
func Compose[A, B, C any](first Function[A, B], second Function[B, C]) Function[A, C] {
	return func(in A) C { return second(first(in)) }
}
