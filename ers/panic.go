package ers

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// ParsePanic converts the output of recover() into an error rooted in
// ErrRecoveredPanic, capturing the stack of the panicking goroutine.
// If no panic is detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	return errors.Join(goerrors.Wrap(r, 2), ErrRecoveredPanic)
}

// Recover catches a panic, turns it into an error and passes it to
// the provided function. Must be called directly by defer.
func Recover(ob func(error)) {
	if err := ParsePanic(recover()); err != nil {
		ob(err)
	}
}

// WithRecoverCall runs a function and, if it panics, converts the
// panic into an error.
func WithRecoverCall(fn func() error) (err error) {
	defer func() {
		if perr := ParsePanic(recover()); perr != nil {
			err = errors.Join(err, perr)
		}
	}()
	return fn()
}

// Stack returns the stack captured when a panic was converted to an
// error, or an empty string for errors that did not come from
// ParsePanic.
func Stack(err error) string {
	var ge *goerrors.Error
	if errors.As(err, &ge) {
		return string(ge.Stack())
	}
	return ""
}

// NewInvariantViolation creates an error rooted in
// ErrInvariantViolation, for use as a panic value.
func NewInvariantViolation(tmpl string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(tmpl, args...))
}

// Invariant panics with an invariant violation when the condition is
// false.
func Invariant(cond bool, tmpl string, args ...any) {
	if !cond {
		panic(NewInvariantViolation(tmpl, args...))
	}
}

// IsInvariantViolation returns true if the argument, typically the
// output of recover(), is or wraps ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, ok := r.(error)
	return ok && errors.Is(err, ErrInvariantViolation)
}
