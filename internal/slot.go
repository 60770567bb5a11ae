// Package internal holds the rendezvous slot that connects a
// generator's worker to its consumer.
package internal

import (
	"context"
	"io"
	"sync"
)

// Slot is a single-capacity blocking handoff between exactly one
// producer and one consumer. The channel is unbuffered: every Send
// waits for the matching Receive, so the two sides strictly alternate
// and at most one value is in flight.
//
// Values travel as themselves, zero values and nil pointers
// included. End-of-stream is the closed channel, never a sentinel
// value.
type Slot[T any] struct {
	pipe chan T
	once sync.Once
}

// NewSlot constructs an open slot.
func NewSlot[T any]() *Slot[T] { return &Slot[T]{pipe: make(chan T)} }

// Send blocks until the consumer takes the value, or the context is
// canceled, in which case it returns the context's error.
func (s *Slot[T]) Send(ctx context.Context, v T) error {
	// check first because select statement ordering is non-deterministic
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.pipe <- v:
		return nil
	}
}

// Receive blocks until the producer hands off a value, the producer
// closes the slot (io.EOF), or the context is canceled (the context's
// error).
func (s *Slot[T]) Receive(ctx context.Context) (out T, _ error) {
	if err := ctx.Err(); err != nil {
		return out, err
	}

	select {
	case <-ctx.Done():
		return out, ctx.Err()
	case v, ok := <-s.pipe:
		if !ok {
			return out, io.EOF
		}
		return v, nil
	}
}

// Close marks the end of the stream. Only the producer may close the
// slot; repeated calls are safe.
func (s *Slot[T]) Close() { s.once.Do(func() { close(s.pipe) }) }
