package saccharin

import (
	"io"

	"golang.org/x/exp/constraints"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/seq"
)

// Number is the set of types Count and Range can step through.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count produces start, start+step, start+2*step and so on, forever.
// Each call returns an independent counter.
func Count[N Number](start, step N) *seq.Infinite[N] {
	n := start
	return seq.NewInfinite(func() N {
		out := n
		n += step
		return out
	})
}

// Range produces the arithmetic progression from start, by step,
// that stops before reaching stop. A negative step counts down. Range
// panics with ers.ErrInvariantViolation when step is zero.
func Range[N Number](start, stop, step N) *seq.Lookahead[N] {
	ers.Invariant(step != 0, "range step must not be zero")

	cur, wrapped := start, false
	return seq.NewLookahead(func() (out N, _ error) {
		if wrapped || (step > 0 && cur >= stop) || (step < 0 && cur <= stop) {
			return out, io.EOF
		}

		out = cur
		next := cur + step
		// integer overflow wraps around instead of passing stop
		wrapped = (step > 0 && next <= cur) || (step < 0 && next >= cur)
		cur = next
		return out, nil
	})
}

// Zip pairs the elements of a and b, in lockstep, until either ends.
func Zip[A, B any](a seq.Iterator[A], b seq.Iterator[B]) *seq.Lookahead[Pair[A, B]] {
	nextA, nextB := seq.Pull(a), seq.Pull(b)
	return seq.NewLookahead(func() (out Pair[A, B], _ error) {
		va, err := nextA()
		if err != nil {
			return out, err
		}
		vb, err := nextB()
		if err != nil {
			return out, err
		}
		return MakePair(va, vb), nil
	}, seq.CloserOf(a), seq.CloserOf(b))
}

// Until calls next until it returns sentinel, producing every value
// before the sentinel.
func Until[T comparable](next func() T, sentinel T) *seq.Lookahead[T] {
	return seq.NewLookahead(func() (out T, _ error) {
		if v := next(); v != sentinel {
			return v, nil
		}
		return out, io.EOF
	})
}
