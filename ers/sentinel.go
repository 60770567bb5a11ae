package ers

// ErrUnsupportedOperation is returned by Remove() on every sequence
// type: lazily produced sequences have nothing to remove from.
const ErrUnsupportedOperation Error = Error("unsupported operation")

// ErrAlreadyStarted is returned when a generator is started more than
// once. Each generator owns exactly one worker for its lifetime.
const ErrAlreadyStarted Error = Error("generator already started")

// ErrPoolClosed is returned when submitting work to a worker pool
// that has been closed.
const ErrPoolClosed Error = Error("worker pool is closed")

// ErrCurrentOpAbort is used by callbacks to signal that a drain or
// loop should stop early. It should be handled like "break", and is
// never returned to callers.
const ErrCurrentOpAbort Error = Error("abort current operation")

// ErrInvalidInput indicates malformed input or configuration. These
// errors are not retriable.
const ErrInvalidInput Error = Error("invalid input")

// ErrRecoveredPanic is at the root of any error produced by
// recovering a panic in a generator body or pool task.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvariantViolation is the root error of the panics raised for
// programmer errors, such as impossible combinator arguments.
const ErrInvariantViolation Error = Error("invariant violation")
