package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks sales intake, catalog lookups and storage latency. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	Registry      *prometheus.Registry
	SalesCreated  prometheus.Counter
	ConfigLookups *prometheus.CounterVec
	StoreDuration *prometheus.HistogramVec
}

// New registers every metric on a fresh registry, so tests can build as many as
// they need.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		SalesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "phonedash_sales_created_total",
			Help: "Total number of sales stored",
		}),
		ConfigLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "phonedash_config_lookups_total",
			Help: "Catalog document lookups by document and result",
		}, []string{"document", "result"}),
		StoreDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "phonedash_store_duration_seconds",
			Help:    "Duration of storage operations",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"}),
	}
}

func (m *Metrics) IncrementSalesCreated() {
	if m == nil {
		return
	}
	m.SalesCreated.Inc()
}

// ObserveConfigLookup counts a lookup; result is "found", "not_found" or "error".
func (m *Metrics) ObserveConfigLookup(document, result string) {
	if m == nil {
		return
	}
	m.ConfigLookups.WithLabelValues(document, result).Inc()
}

// ObserveStore records the duration of a storage operation started at start.
func (m *Metrics) ObserveStore(op string, start time.Time) {
	if m == nil {
		return
	}
	m.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
