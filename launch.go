package saccharin

import (
	"context"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/gen"
	"github.com/gilch/saccharin/seq"
)

// launch starts a combinator's body on the default pool. It panics if
// the generator cannot start, which only happens once the default
// pool has been closed.
func launch[T any](ctx context.Context, name string, body gen.Body[T]) *gen.Iterator[T] {
	it, err := gen.Go(ctx, body, gen.WithName(name))
	if err != nil {
		panic(ers.NewInvariantViolation("starting %s: %v", name, err))
	}
	return it
}

// release closes an input sequence at the end of a body, reporting
// the close error only when the body itself succeeded.
func release[T any](it seq.Iterator[T], err *error) {
	if cerr := seq.CloserOf(it)(); *err == nil {
		*err = cerr
	}
}

// upstream returns the failure recorded by an exhausted input, if any.
func upstream[T any](it seq.Iterator[T]) error {
	if err := seq.End(it); !ers.IsExhausted(err) {
		return err
	}
	return nil
}
