package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts cache lookups per result kind.
type Metrics struct {
	HitsTotal   *prometheus.CounterVec
	MissesTotal *prometheus.CounterVec
	ErrorsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the cache metrics.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dictionary_cache_hits_total",
				Help: "Total number of search cache hits",
			},
			[]string{"kind"},
		),
		MissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dictionary_cache_misses_total",
				Help: "Total number of search cache misses",
			},
			[]string{"kind"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dictionary_cache_errors_total",
				Help: "Total number of failed cache operations",
			},
			[]string{"kind", "operation"},
		),
	}

	registry.MustRegister(m.HitsTotal, m.MissesTotal, m.ErrorsTotal)
	return m
}

func (m *Metrics) hit(kind string) {
	if m != nil {
		m.HitsTotal.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) miss(kind string) {
	if m != nil {
		m.MissesTotal.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) fail(kind, operation string) {
	if m != nil {
		m.ErrorsTotal.WithLabelValues(kind, operation).Inc()
	}
}
