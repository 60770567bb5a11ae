// Package gen runs a producer body on a worker goroutine and exposes
// what it yields as a lazy sequence.
//
// The body and the consumer meet at a rendezvous: each yield blocks
// until the consumer asks for the element, so the body runs at most
// one element ahead and the two strictly alternate. Closing the
// consumer's Iterator cancels the body, which observes the
// cancellation as an error from its next yield, and waits for the
// worker to finish.
package gen

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/internal"
	"github.com/gilch/saccharin/opt"
	"github.com/gilch/saccharin/seq"
)

// Yield hands one element to the consumer, blocking until the
// consumer takes it. It returns a non-nil error, the context's, once
// the generator has been canceled; bodies should return promptly
// when it does.
type Yield[T any] func(T) error

// Body is the producing procedure of a generator. It runs once, on a
// pool worker, and the generator's sequence ends when it returns.
//
// Returning nil or io.EOF ends the sequence normally. Returning the
// error from a canceled yield (or any context error) is a quiet
// cancellation. Any other error, or a panic, is a failure: it is
// logged and reported from the Iterator's Err and Close methods.
type Body[T any] func(ctx context.Context, yield Yield[T]) error

// Generator is a body waiting to be started. A Generator starts at
// most once.
type Generator[T any] struct {
	body    Body[T]
	opts    opt.Provider[*Options]
	started atomic.Bool
}

// New constructs an unstarted generator.
func New[T any](body Body[T], opts ...opt.Provider[*Options]) *Generator[T] {
	return &Generator[T]{body: body, opts: opt.Join(opts...)}
}

// Go constructs and starts a generator.
func Go[T any](ctx context.Context, body Body[T], opts ...opt.Provider[*Options]) (*Iterator[T], error) {
	return New(body, opts...).Start(ctx)
}

// Start launches the body on a pool worker and returns the consumer's
// view of the sequence. Start returns once the worker is running; the
// body itself proceeds only as far as its first yield before the
// consumer asks for an element.
//
// The second and subsequent calls return ers.ErrAlreadyStarted.
// Invalid options, a nil body, or a closed pool are also errors; in
// those cases no worker is started.
//
// Canceling ctx cancels the generator: the sequence ends, and the
// body's next yield fails.
func (g *Generator[T]) Start(ctx context.Context) (*Iterator[T], error) {
	if !g.started.CompareAndSwap(false, true) {
		return nil, ers.ErrAlreadyStarted
	}

	conf, err := buildOptions(g.opts)
	if err != nil {
		return nil, fmt.Errorf("generator options: %w", err)
	}
	if g.body == nil {
		return nil, fmt.Errorf("generator %q has no body: %w", conf.Name, ers.ErrInvalidInput)
	}

	ctx, cancel := context.WithCancel(ctx)
	eng := &engine[T]{
		name:    conf.Name,
		slot:    internal.NewSlot[T](),
		cancel:  cancel,
		done:    make(chan struct{}),
		logger:  conf.logger(ctx),
		metrics: conf.Metrics,
	}

	ready := make(chan struct{})
	if err := conf.pool().Submit(func() { eng.run(ctx, ready, g.body) }); err != nil {
		cancel()
		return nil, fmt.Errorf("starting generator %q: %w", conf.Name, err)
	}
	<-ready

	return newIterator(ctx, eng), nil
}

// engine is the state shared between a generator's worker and its
// consumer. It must never refer to the consumer's Iterator, which
// would keep the Iterator reachable for as long as the worker runs.
type engine[T any] struct {
	name    string
	slot    *internal.Slot[T]
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
	logger  zerolog.Logger
	metrics *Metrics
}

func (e *engine[T]) run(ctx context.Context, ready chan<- struct{}, body Body[T]) {
	// done closes before the slot so that a consumer that has
	// observed the end of the stream also observes the failure.
	defer e.slot.Close()
	defer close(e.done)

	e.metrics.onStart()
	close(ready)

	err := ers.WithRecoverCall(func() error {
		return body(ctx, func(v T) error { return e.slot.Send(ctx, v) })
	})

	switch {
	case err == nil || ers.IsExhausted(err):
		e.logger.Trace().Msg("generator finished")
		e.metrics.onComplete()
	case ers.IsExpiredContext(err):
		e.logger.Trace().Msg("generator canceled")
		e.metrics.onCancel()
	default:
		e.err = fmt.Errorf("generator %q: %w", e.name, err)
		ev := e.logger.Error().Err(err)
		if stack := ers.Stack(err); stack != "" {
			ev = ev.Str("stack", stack)
		}
		ev.Msg("generator body failed")
		e.metrics.onFailure()
	}
}

func (e *engine[T]) receive(ctx context.Context) seq.Producer[T] {
	return func() (T, error) {
		v, err := e.slot.Receive(ctx)
		if ers.IsExpiredContext(err) {
			return v, io.EOF
		}
		return v, err
	}
}

// failure returns the body's failure once the worker has finished,
// and nil before then.
func (e *engine[T]) failure() error {
	select {
	case <-e.done:
		return e.err
	default:
		return nil
	}
}

func (e *engine[T]) finished() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// shutdown cancels the worker, if it is still running, and waits for
// it to return.
func (e *engine[T]) shutdown() {
	e.cancel()
	<-e.done
}

// abandon is the cleanup for an Iterator that became unreachable
// without being closed. It must not block: it runs on the runtime's
// cleanup goroutine.
func (e *engine[T]) abandon() {
	if e.finished() {
		return
	}
	e.logger.Warn().Msg("generator iterator abandoned without Close; canceling its worker")
	e.metrics.onAbandon()
	e.cancel()
}

// Iterator is the consumer's view of a started generator: a lazy
// sequence of the elements the body yields. Like every sequence it is
// for use by a single consumer goroutine.
//
// Close an Iterator when done with it, even one that has been
// drained. An Iterator that becomes unreachable while its body is
// still running is canceled by a runtime cleanup, and the event is
// logged and counted, but that reclamation happens only after a
// garbage collection and should not be relied on.
type Iterator[T any] struct {
	*seq.Lookahead[T]
	eng     *engine[T]
	cleanup runtime.Cleanup
}

var _ seq.Sequence[int] = (*Iterator[int])(nil)

func newIterator[T any](ctx context.Context, eng *engine[T]) *Iterator[T] {
	it := &Iterator[T]{
		Lookahead: seq.NewLookahead(eng.receive(ctx)),
		eng:       eng,
	}
	it.cleanup = runtime.AddCleanup(it, (*engine[T]).abandon, eng)
	return it
}

// Err returns the body's failure, once the body has returned.
// Exhaustion and cancellation are not failures.
func (it *Iterator[T]) Err() error { return it.eng.failure() }

// Close cancels the body, if it is still running, waits for its
// worker to return, and reports the body's failure, if any. Close may
// block until the body reaches its next yield. Repeated calls return
// the same result.
func (it *Iterator[T]) Close() error {
	_ = it.Lookahead.Close()
	it.cleanup.Stop()
	it.eng.shutdown()
	return it.eng.err
}
