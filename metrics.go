package accountcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsSubsystem = "account_cache"

// Metrics holds the Prometheus collectors a Cache reports to.
// All methods are safe on a nil *Metrics.
type Metrics struct {
	// Lookup metrics
	Hits   prometheus.Counter
	Misses prometheus.Counter

	// Write metrics
	Puts      prometheus.Counter
	Evictions prometheus.Counter
	Entries   prometheus.Gauge

	// Listener metrics
	Notifications    prometheus.Counter
	ListenerFailures prometheus.Counter
}

// NewMetrics creates the collectors under namespace and registers them with
// reg. A nil reg creates unregistered collectors.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "hits_total",
			Help:      "Total number of lookups that found the account",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "misses_total",
			Help:      "Total number of lookups for an account not in the cache",
		}),
		Puts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "puts_total",
			Help:      "Total number of account writes",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "evictions_total",
			Help:      "Total number of accounts evicted by the LRU policy",
		}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "entries",
			Help:      "Current number of accounts held in the cache",
		}),
		Notifications: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "notifications_total",
			Help:      "Total number of account update notifications delivered",
		}),
		ListenerFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: metricsSubsystem,
			Name:      "listener_failures_total",
			Help:      "Total number of account update listener calls that panicked",
		}),
	}
}

// RecordGet records the outcome of a single lookup.
func (m *Metrics) RecordGet(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.Hits.Inc()
	} else {
		m.Misses.Inc()
	}
}

// RecordPut records a write and the resulting cache size.
func (m *Metrics) RecordPut(evicted bool, entries int) {
	if m == nil {
		return
	}
	m.Puts.Inc()
	if evicted {
		m.Evictions.Inc()
	}
	m.Entries.Set(float64(entries))
}

// RecordNotification records one listener invocation.
func (m *Metrics) RecordNotification(success bool) {
	if m == nil {
		return
	}
	if success {
		m.Notifications.Inc()
	} else {
		m.ListenerFailures.Inc()
	}
}
