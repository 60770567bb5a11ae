package seq

import (
	"errors"
	"io"

	"github.com/gilch/saccharin/ers"
)

type state int8

const (
	used state = iota
	fresh
	done
)

// Lookahead adapts a Producer to the Iterator contract by pre-fetching
// one element. HasNext calls the producer at most once per element, no
// matter how many times it is polled.
//
// A Lookahead starts out "used": the first HasNext or Next calls the
// producer, caching the element ("fresh") or, on io.EOF or any other
// error, finishing the sequence ("done"). Next hands out the cached
// element and returns to "used". Once done, HasNext is false and Next
// returns io.EOF.
type Lookahead[T any] struct {
	next    Producer[T]
	ahead   T
	state   state
	err     error
	closers []func() error
	closed  bool
	cerr    error
}

var _ Sequence[int] = (*Lookahead[int])(nil)

// NewLookahead constructs a Lookahead over the producer. The closers
// run, once, when the sequence is closed.
func NewLookahead[T any](next Producer[T], closers ...func() error) *Lookahead[T] {
	return &Lookahead[T]{next: next, closers: closers}
}

func (l *Lookahead[T]) refresh() state {
	v, err := l.next()
	switch {
	case err == nil:
		l.ahead = v
		l.state = fresh
	case ers.IsExhausted(err):
		l.state = done
	default:
		l.err = err
		l.state = done
	}
	return l.state
}

// HasNext reports whether Next will produce an element.
func (l *Lookahead[T]) HasNext() bool {
	switch l.state {
	case fresh:
		return true
	case used:
		return l.refresh() == fresh
	default:
		return false
	}
}

// Next returns the next element, or io.EOF when the sequence is
// exhausted.
func (l *Lookahead[T]) Next() (out T, _ error) {
	if l.state == used {
		l.refresh()
	}
	if l.state != fresh {
		return out, io.EOF
	}

	out = l.ahead
	l.ahead = *new(T)
	l.state = used
	return out, nil
}

// Remove is not supported.
func (*Lookahead[T]) Remove() error { return unsupported() }

// Err returns the failure, if any, that ended the sequence. Normal
// exhaustion is not a failure.
func (l *Lookahead[T]) Err() error { return l.err }

// Close finishes the sequence, discarding any pre-fetched element, and
// runs the closers. The returned error aggregates the producer's
// failure and the closers' errors. Repeated calls return the same
// error without running the closers again.
func (l *Lookahead[T]) Close() error {
	if l.closed {
		return l.cerr
	}
	l.closed = true
	l.state = done
	l.ahead = *new(T)

	errs := []error{l.err}
	for _, closer := range l.closers {
		errs = append(errs, closer())
	}
	l.cerr = errors.Join(errs...)
	return l.cerr
}
