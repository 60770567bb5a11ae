package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/creasty/defaults"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/opt"
)

// Options configures a generator. The zero value, after defaults are
// applied, runs the generator on the shared DefaultPool without
// metrics, logging through the start context's logger.
type Options struct {
	// Name identifies the generator in log messages and errors.
	Name string `default:"generator"`
	// Logger overrides the logger. When nil, the logger attached
	// to the context passed to Start (zerolog.Ctx) is used, and
	// failing that, the global zerolog logger.
	Logger *zerolog.Logger
	// Pool is the worker pool the generator's worker is drawn
	// from. When nil, DefaultPool() is used.
	Pool *Pool
	// Metrics, when non-nil, records the generator's lifecycle.
	Metrics *Metrics
}

// Validate ensures the options are usable.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("generator name must not be empty: %w", ers.ErrInvalidInput)
	}
	return nil
}

func (o *Options) logger(ctx context.Context) zerolog.Logger {
	out := log.Logger
	switch {
	case o.Logger != nil:
		out = *o.Logger
	case zerolog.Ctx(ctx).GetLevel() != zerolog.Disabled:
		out = *zerolog.Ctx(ctx)
	}
	return out.With().Str("generator", o.Name).Logger()
}

func (o *Options) pool() *Pool {
	if o.Pool == nil {
		return DefaultPool()
	}
	return o.Pool
}

func buildOptions(op opt.Provider[*Options]) (*Options, error) {
	conf := &Options{}
	if err := defaults.Set(conf); err != nil {
		return nil, err
	}
	return op.Build(conf)
}

// WithName sets the generator's name.
func WithName(name string) opt.Provider[*Options] {
	return func(o *Options) error { o.Name = name; return nil }
}

// WithLogger sets the generator's logger.
func WithLogger(l zerolog.Logger) opt.Provider[*Options] {
	return func(o *Options) error { o.Logger = &l; return nil }
}

// WithPool runs the generator's worker on the provided pool.
func WithPool(p *Pool) opt.Provider[*Options] {
	return func(o *Options) error {
		if p == nil {
			return fmt.Errorf("nil pool: %w", ers.ErrInvalidInput)
		}
		o.Pool = p
		return nil
	}
}

// WithMetrics records the generator's lifecycle in the provided
// metrics.
func WithMetrics(m *Metrics) opt.Provider[*Options] {
	return func(o *Options) error { o.Metrics = m; return nil }
}

// WithOptions overrides all options with the provided values.
func WithOptions(in *Options) opt.Provider[*Options] {
	return func(o *Options) error { *o = *in; return nil }
}

// PoolOptions configures a worker pool.
type PoolOptions struct {
	// KeepAlive is how long an idle worker waits for new work
	// before exiting.
	KeepAlive time.Duration `default:"60s"`
	// Clock is the time source for keep-alive timers. When nil,
	// the wall clock is used.
	Clock clock.Clock
	// Logger receives reports of panicking tasks. When nil, the
	// global zerolog logger is used.
	Logger *zerolog.Logger
	// Metrics, when non-nil, records idle and spawned workers.
	Metrics *Metrics
}

// Validate ensures the options are usable, filling in the clock.
func (o *PoolOptions) Validate() error {
	if o.KeepAlive < 0 {
		return fmt.Errorf("keep-alive %s is negative: %w", o.KeepAlive, ers.ErrInvalidInput)
	}
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	return nil
}

// PoolKeepAlive sets how long idle workers wait for new work.
func PoolKeepAlive(d time.Duration) opt.Provider[*PoolOptions] {
	return func(o *PoolOptions) error { o.KeepAlive = d; return nil }
}

// PoolClock sets the pool's time source.
func PoolClock(c clock.Clock) opt.Provider[*PoolOptions] {
	return func(o *PoolOptions) error { o.Clock = c; return nil }
}

// PoolLogger sets the pool's logger.
func PoolLogger(l zerolog.Logger) opt.Provider[*PoolOptions] {
	return func(o *PoolOptions) error { o.Logger = &l; return nil }
}

// PoolMetrics records the pool's workers in the provided metrics.
func PoolMetrics(m *Metrics) opt.Provider[*PoolOptions] {
	return func(o *PoolOptions) error { o.Metrics = m; return nil }
}
