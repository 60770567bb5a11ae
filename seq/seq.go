// Package seq provides the pull-based sequence contracts used
// throughout saccharin, along with the two adapters that most
// sequences are built from: Lookahead, which turns a "compute the next
// element or report exhaustion" function into a HasNext/Next
// iterator, and Infinite, which never runs out.
//
// Exhaustion is reported with io.EOF. Sequences are single-owner and
// single-consumer: none of the types in this package are safe for
// concurrent use.
package seq

import (
	"github.com/gilch/saccharin/ers"
)

// Iterator is the minimal pull contract. Next returns io.EOF once
// HasNext would report false.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Sequence is an Iterator that can be closed, releasing whatever
// produces its elements. Remove is never supported and always returns
// ers.ErrUnsupportedOperation.
type Sequence[T any] interface {
	Iterator[T]
	Remove() error
	Close() error
}

// Producer computes the next element of a sequence. It returns io.EOF
// when there are no more elements; any other error ends the sequence
// and is reported as a failure.
type Producer[T any] func() (T, error)

func unsupported() error { return ers.ErrUnsupportedOperation }
