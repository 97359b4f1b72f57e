// Package metricsink counts bridge records with Prometheus counters.
// Add it next to the console sink with Policy.AddSink and register
// Collectors with the application's registry.
package metricsink

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

const subsystem = "log"

// Metrics groups the bridge log counters.
type Metrics struct {
	Records *prometheus.CounterVec
}

// New returns Metrics whose counters live under namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		Records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "records_total",
			Help:      "Number of log records dispatched, by level and source.",
		}, []string{"level", "source"}),
	}
}

// Func returns the sink that increments the counters.
func (m *Metrics) Func() sink.Func {
	return func(rec core.Record) {
		m.Records.WithLabelValues(rec.Level.String(), rec.Source.String()).Inc()
	}
}

// Collectors returns the collectors to register.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Records}
}
