// Package opt provides functional option providers for the
// configuration structs of the generator engine and its worker pool.
package opt

import (
	"errors"

	"github.com/gilch/saccharin/ers"
)

// Provider is a function type for building functional arguments.
//
// The type T should always be mutable (e.g. a pointer to a
// configuration struct).
type Provider[T any] func(T) error

// New constructs a new Provider, essentially for type casting purposes.
func New[T any](in func(T) error) Provider[T] { return in }

// Join takes zero or more providers and produces a single combined
// provider. With zero or nil arguments, the operation becomes a noop.
func Join[T any](op ...Provider[T]) Provider[T] {
	var noop Provider[T] = func(T) error { return nil }
	if len(op) == 0 {
		return noop
	}
	return noop.Join(op...)
}

// Apply applies the provider to the configuration and, if T has a
// Validate() method, calls that. All errors are aggregated, and a
// panicking provider is reported as an error.
func (op Provider[T]) Apply(in T) error {
	err := ers.WithRecoverCall(func() error { return op(in) })

	if validator, ok := any(in).(interface{ Validate() error }); ok {
		return errors.Join(err, validator.Validate())
	}
	return err
}

// Build processes a configuration object, returning it (or a zero
// value, in the case of an error).
func (op Provider[T]) Build(conf T) (out T, err error) {
	if err = op.Apply(conf); err != nil {
		return out, err
	}
	return conf, nil
}

// Join aggregates providers into a single provider that runs them in
// order. Nil providers are skipped.
func (op Provider[T]) Join(next ...Provider[T]) Provider[T] {
	return func(conf T) (err error) {
		for _, p := range append([]Provider[T]{op}, next...) {
			if p == nil {
				continue
			}
			err = errors.Join(err, ers.WithRecoverCall(func() error { return p(conf) }))
		}
		return err
	}
}
