package saccharin

import (
	"context"
	"io"
	"iter"
	"math"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/fn"
	"github.com/gilch/saccharin/gen"
	"github.com/gilch/saccharin/seq"
)

// Unbounded, passed as ISlice's stop, places no upper bound on the
// slice.
const Unbounded = -1

// LexCart produces the Cartesian product of outer and inner in
// lexicographic order: the inner element varies fastest. inner is
// ranged over once for every outer element, so it must be reusable,
// like slices.Values; a single-use sequence such as seq.All(it)
// yields nothing after the first outer element.
func LexCart[I, J any](ctx context.Context, outer seq.Iterator[I], inner iter.Seq[J]) *gen.Iterator[Pair[I, J]] {
	return launch(ctx, "lexcart", func(ctx context.Context, yield gen.Yield[Pair[I, J]]) (err error) {
		defer release(outer, &err)
		return seq.Each(outer, func(i I) error {
			for j := range inner {
				if err := yield(MakePair(i, j)); err != nil {
					return err
				}
			}
			// an empty inner never yields, so cancellation is seen here
			return ctx.Err()
		})
	})
}

// ColexCart produces the Cartesian product in colexicographic order:
// the head of each pair, drawn from the reusable outer sequence,
// varies fastest, while the iterator advances once per full pass.
func ColexCart[J, I any](ctx context.Context, outer iter.Seq[J], inner seq.Iterator[I]) *gen.Iterator[Pair[J, I]] {
	return launch(ctx, "colexcart", func(ctx context.Context, yield gen.Yield[Pair[J, I]]) (err error) {
		defer release(inner, &err)
		return seq.Each(inner, func(i I) error {
			for j := range outer {
				if err := yield(MakePair(j, i)); err != nil {
					return err
				}
			}
			return ctx.Err()
		})
	})
}

// Cycle produces the elements of it and then repeats them forever.
// Elements are produced as they are consumed from it, and buffered
// for the repeats, so an infinite input grows the buffer without
// bound. An empty input produces an empty sequence.
func Cycle[T any](ctx context.Context, it seq.Iterator[T]) *gen.Iterator[T] {
	return launch(ctx, "cycle", func(ctx context.Context, yield gen.Yield[T]) (err error) {
		defer release(it, &err)

		var saved []T
		if err := seq.Each(it, func(v T) error { saved = append(saved, v); return yield(v) }); err != nil {
			return err
		}
		if len(saved) == 0 {
			return nil
		}

		for {
			for _, v := range saved {
				if err := yield(v); err != nil {
					return err
				}
			}
		}
	})
}

// Chain produces the elements of each sequence from links in turn.
// Each link is closed once it is exhausted.
func Chain[T any](ctx context.Context, links seq.Iterator[seq.Iterator[T]]) *gen.Iterator[T] {
	return launch(ctx, "chain", func(ctx context.Context, yield gen.Yield[T]) (err error) {
		defer release(links, &err)
		return seq.Each(links, func(link seq.Iterator[T]) (err error) {
			defer release(link, &err)
			if err := seq.Each(link, yield); err != nil {
				return err
			}
			return ctx.Err()
		})
	})
}

// Concat produces the elements of each of its arguments in turn.
func Concat[T any](ctx context.Context, its ...seq.Iterator[T]) *gen.Iterator[T] {
	return Chain(ctx, seq.FromSlice(its))
}

// DropWhile skips elements of it while p holds, then produces the
// first element for which p fails and every element after it,
// without testing them.
func DropWhile[T any](ctx context.Context, p fn.Predicate[T], it seq.Iterator[T]) *gen.Iterator[T] {
	return launch(ctx, "dropwhile", func(ctx context.Context, yield gen.Yield[T]) (err error) {
		defer release(it, &err)

		dropping := true
		return seq.Each(it, func(v T) error {
			if dropping && p(v) {
				return ctx.Err()
			}
			dropping = false
			return yield(v)
		})
	})
}

// ISlice produces the elements of it at positions start, start+step,
// start+2*step and so on, strictly below stop, or without limit when
// stop is Unbounded. Once the next position would reach stop, ISlice
// stops pulling from it.
//
// The usual start is 0 and the usual step 1: ISlice(ctx, it, 0, n, 1)
// produces the first n elements, and ISlice(ctx, it, n, Unbounded, 1)
// everything after them.
//
// ISlice panics with ers.ErrInvariantViolation when start is
// negative, step is less than one, or stop is negative and not
// Unbounded.
func ISlice[T any](ctx context.Context, it seq.Iterator[T], start, stop, step int) *gen.Iterator[T] {
	ers.Invariant(start >= 0, "islice start %d is negative", start)
	ers.Invariant(step >= 1, "islice step %d is less than one", step)
	ers.Invariant(stop >= 0 || stop == Unbounded, "islice stop %d is negative", stop)

	return launch(ctx, "islice", func(ctx context.Context, yield gen.Yield[T]) (err error) {
		defer release(it, &err)

		target := start
		for idx := 0; stop == Unbounded || target < stop; idx++ {
			if !it.HasNext() {
				return upstream(it)
			}
			v, err := it.Next()
			if err != nil {
				return upstream(it)
			}
			if idx != target {
				if err := ctx.Err(); err != nil {
					return err
				}
				continue
			}

			if err := yield(v); err != nil {
				return err
			}

			switch {
			case stop != Unbounded && step >= stop-target:
				return nil
			case stop == Unbounded && target > math.MaxInt-step:
				return nil
			}
			target += step
		}
		return nil
	})
}

// Repeat produces e forever.
func Repeat[T any](e T) *seq.Infinite[T] { return seq.NewInfinite(func() T { return e }) }

// RepeatN produces e exactly times times; nothing when times is not
// positive.
func RepeatN[T any](e T, times int) *seq.Lookahead[T] {
	remaining := times
	return seq.NewLookahead(func() (out T, _ error) {
		if remaining <= 0 {
			return out, io.EOF
		}
		remaining--
		return e, nil
	})
}

// Compress produces the elements of data whose corresponding selector
// is true, pulling from both in lockstep. It ends when either input
// ends.
func Compress[T any](data seq.Iterator[T], selectors seq.Iterator[bool]) *seq.Lookahead[T] {
	nextData, nextSelector := seq.Pull(data), seq.Pull(selectors)
	return seq.NewLookahead(func() (out T, _ error) {
		for {
			v, err := nextData()
			if err != nil {
				return out, err
			}
			keep, err := nextSelector()
			if err != nil {
				return out, err
			}
			if keep {
				return v, nil
			}
		}
	}, seq.CloserOf(data), seq.CloserOf(selectors))
}

// TakeWhile produces elements of it while p holds. The first element
// for which p fails is consumed and discarded, and ends the sequence.
func TakeWhile[T any](p fn.Predicate[T], it seq.Iterator[T]) *seq.Lookahead[T] {
	next := seq.Pull(it)
	return seq.NewLookahead(func() (out T, _ error) {
		v, err := next()
		switch {
		case err != nil:
			return out, err
		case !p(v):
			return out, io.EOF
		default:
			return v, nil
		}
	}, seq.CloserOf(it))
}
