package gen

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/creasty/defaults"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gilch/saccharin/ers"
	"github.com/gilch/saccharin/opt"
)

// Pool is a cached pool of worker goroutines. Submit hands a task to
// an idle worker when one is waiting and otherwise starts a new
// worker; there is no upper bound on the number of workers. A worker
// that finishes its task waits up to KeepAlive for another before
// exiting.
//
// Generator bodies run on pool workers, so a long-lived program that
// starts many short generators reuses goroutines instead of creating
// one per generator.
type Pool struct {
	conf    PoolOptions
	logger  zerolog.Logger
	tasks   chan func()
	quit    chan struct{}
	mu      sync.Mutex
	closed  bool
	idle    atomic.Int64
	running atomic.Int64
}

// DefaultPool returns the process-wide pool used by generators that
// do not specify one. It is created, with the default options, on
// first use.
var DefaultPool = sync.OnceValue(func() *Pool {
	p, err := NewPool()
	ers.Invariant(err == nil, "default pool options: %v", err)
	return p
})

// NewPool constructs a pool. Workers start on demand.
func NewPool(opts ...opt.Provider[*PoolOptions]) (*Pool, error) {
	conf := &PoolOptions{}
	if err := defaults.Set(conf); err != nil {
		return nil, err
	}
	if err := opt.Join(opts...).Apply(conf); err != nil {
		return nil, fmt.Errorf("pool options: %w", err)
	}

	p := &Pool{
		conf:   *conf,
		logger: log.Logger,
		tasks:  make(chan func()),
		quit:   make(chan struct{}),
	}
	if conf.Logger != nil {
		p.logger = *conf.Logger
	}
	return p, nil
}

// Submit runs the task on a pool worker. Once the pool is closed,
// Submit returns ers.ErrPoolClosed and does not run the task.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return fmt.Errorf("nil task: %w", ers.ErrInvalidInput)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ers.ErrPoolClosed
	}

	select {
	case p.tasks <- task:
	default:
		p.running.Add(1)
		p.conf.Metrics.onSpawn()
		go p.worker(task)
	}
	return nil
}

// Close stops idle workers and rejects further tasks. Running tasks
// are not interrupted: their workers exit when the task returns.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.quit)
	}
}

// Idle reports the number of workers waiting for a task.
func (p *Pool) Idle() int { return int(p.idle.Load()) }

// Workers reports the number of live workers, running or idle.
func (p *Pool) Workers() int { return int(p.running.Load()) }

func (p *Pool) worker(task func()) {
	defer p.running.Add(-1)
	for task != nil {
		p.exec(task)
		task = p.wait()
	}
}

func (p *Pool) exec(task func()) {
	defer ers.Recover(func(err error) {
		p.logger.Error().Err(err).Str("stack", ers.Stack(err)).Msg("pool task panicked")
	})
	task()
}

func (p *Pool) wait() func() {
	timer := p.conf.Clock.Timer(p.conf.KeepAlive)
	defer timer.Stop()

	p.idle.Add(1)
	p.conf.Metrics.onIdle(1)
	defer func() {
		p.idle.Add(-1)
		p.conf.Metrics.onIdle(-1)
	}()

	select {
	case task := <-p.tasks:
		return task
	case <-timer.C:
		return nil
	case <-p.quit:
		return nil
	}
}
