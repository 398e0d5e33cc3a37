// Package metric exposes gateway-level Prometheus metrics: job outcomes
// per backend category and backend call latency.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the gateway's Prometheus collectors behind a private
// registry so tests can create independent instances.
type Metrics struct {
	registry *prometheus.Registry

	JobsStarted     *prometheus.CounterVec
	JobsCompleted   *prometheus.CounterVec
	JobsFailed      *prometheus.CounterVec
	BackendDuration *prometheus.HistogramVec
}

// New creates and registers all gateway metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		JobsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gateway",
				Subsystem: "jobs",
				Name:      "started_total",
				Help:      "Total number of jobs that began executing",
			},
			[]string{"category"},
		),

		JobsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gateway",
				Subsystem: "jobs",
				Name:      "completed_total",
				Help:      "Total number of jobs that completed successfully",
			},
			[]string{"category"},
		),

		JobsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gateway",
				Subsystem: "jobs",
				Name:      "failed_total",
				Help:      "Total number of jobs that terminated in failure",
			},
			[]string{"category"},
		),

		BackendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gateway",
				Subsystem: "backend",
				Name:      "call_duration_seconds",
				Help:      "Backend invocation duration in seconds",
				Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600},
			},
			[]string{"category"},
		),
	}

	m.registry.MustRegister(
		m.JobsStarted,
		m.JobsCompleted,
		m.JobsFailed,
		m.BackendDuration,
	)

	return m
}

// Handler returns the scrape endpoint for this metrics set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
