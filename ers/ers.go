// Package ers holds the error vocabulary shared by the sequence,
// generator, and combinator packages: constant sentinel errors, and
// the predicates that sort an error into exhaustion, cancellation,
// or failure.
//
// Exhaustion is always io.EOF. Cancellation is always rooted in a
// context error. Everything else is a failure.
package ers

import (
	"context"
	"errors"
	"io"
)

// Error is the type of the package's sentinel errors, which makes it
// possible to declare them as constants.
//
// In addition to nil error interface values, the empty string is
// considered equal to nil errors for the purposes of Is().
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

// Is satisfies errors.Is without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}

// Is returns true if the error is, or wraps, any of the targets.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsExhausted reports whether the error signals the normal end of a
// sequence: io.EOF, or ErrCurrentOpAbort, which a callback may return
// to stop a drain early.
func IsExhausted(err error) bool { return Is(err, io.EOF, ErrCurrentOpAbort) }

// IsExpiredContext checks an error to see if it, or any of its
// parents, signal that a context has expired. This covers both
// canceled contexts and ones which have exceeded their deadlines.
func IsExpiredContext(err error) bool { return Is(err, context.Canceled, context.DeadlineExceeded) }

// IsTerminating returns true for every error that ends a sequence
// without being a failure: exhaustion and cancellation.
func IsTerminating(err error) bool { return IsExhausted(err) || IsExpiredContext(err) }
