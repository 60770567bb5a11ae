package gen

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts generator and pool lifecycle events. A nil *Metrics
// is valid and records nothing.
//
// The abandoned counter is the one to watch: it counts iterators that
// became unreachable while their worker was still running, which
// means some caller forgot to Close a generator.
type Metrics struct {
	started   prometheus.Counter
	completed prometheus.Counter
	canceled  prometheus.Counter
	failed    prometheus.Counter
	abandoned prometheus.Counter
	active    prometheus.Gauge

	idle    prometheus.Gauge
	spawned prometheus.Counter
}

// NewMetrics constructs the collectors, under the given namespace,
// and registers them with the registerer.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	counter := func(subsystem, name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}
	gauge := func(subsystem, name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		})
	}

	m := &Metrics{
		started:   counter("generator", "started_total", "Generators whose worker has started."),
		completed: counter("generator", "completed_total", "Generators whose body returned normally."),
		canceled:  counter("generator", "canceled_total", "Generators stopped by cancellation."),
		failed:    counter("generator", "failed_total", "Generators whose body failed or panicked."),
		abandoned: counter("generator", "abandoned_total", "Generator iterators reclaimed without Close."),
		active:    gauge("generator", "active_workers", "Generator workers currently running."),
		idle:      gauge("pool", "idle_workers", "Pool workers waiting for work."),
		spawned:   counter("pool", "spawned_total", "Pool workers started."),
	}

	for _, c := range []prometheus.Collector{
		m.started, m.completed, m.canceled, m.failed, m.abandoned, m.active, m.idle, m.spawned,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) onStart() {
	if m != nil {
		m.started.Inc()
		m.active.Inc()
	}
}

func (m *Metrics) onStop(outcome prometheus.Counter) {
	if m != nil {
		m.active.Dec()
		outcome.Inc()
	}
}

func (m *Metrics) onComplete() {
	if m != nil {
		m.onStop(m.completed)
	}
}

func (m *Metrics) onCancel() {
	if m != nil {
		m.onStop(m.canceled)
	}
}

func (m *Metrics) onFailure() {
	if m != nil {
		m.onStop(m.failed)
	}
}

func (m *Metrics) onAbandon() {
	if m != nil {
		m.abandoned.Inc()
	}
}

func (m *Metrics) onIdle(delta float64) {
	if m != nil {
		m.idle.Add(delta)
	}
}

func (m *Metrics) onSpawn() {
	if m != nil {
		m.spawned.Inc()
	}
}
