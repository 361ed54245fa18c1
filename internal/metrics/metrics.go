// Package metrics provides Prometheus metrics for the pitch agent.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the agent.
type Metrics struct {
	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	RoundsTotal        *prometheus.CounterVec
	TranscriptLength   prometheus.Gauge
	ErrorsTotal        *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitch_generations_total",
				Help: "Total number of backend generation calls by role and status.",
			},
			[]string{"role", "status"},
		),
		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pitch_generation_duration_seconds",
				Help:    "Backend generation call duration by role.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"role"},
		),
		RoundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitch_rounds_total",
				Help: "Total judge-panel rounds by trigger and status.",
			},
			[]string{"trigger", "status"},
		),
		TranscriptLength: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "pitch_transcript_length",
				Help: "Number of turns in the active session transcript.",
			},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitch_errors_total",
				Help: "Total errors by module and type.",
			},
			[]string{"module", "type"},
		),
		registry: reg,
	}

	reg.MustRegister(m.GenerationsTotal)
	reg.MustRegister(m.GenerationDuration)
	reg.MustRegister(m.RoundsTotal)
	reg.MustRegister(m.TranscriptLength)
	reg.MustRegister(m.ErrorsTotal)

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordGeneration increments the generation counter.
func (m *Metrics) RecordGeneration(role, status string) {
	m.GenerationsTotal.WithLabelValues(role, status).Inc()
}

// ObserveGeneration records a generation call duration.
func (m *Metrics) ObserveGeneration(role string, seconds float64) {
	m.GenerationDuration.WithLabelValues(role).Observe(seconds)
}

// RecordRound increments the round counter.
func (m *Metrics) RecordRound(trigger, status string) {
	m.RoundsTotal.WithLabelValues(trigger, status).Inc()
}

// SetTranscriptLength sets the transcript-length gauge.
func (m *Metrics) SetTranscriptLength(n int) {
	m.TranscriptLength.Set(float64(n))
}

// RecordError increments the error counter.
func (m *Metrics) RecordError(module, errType string) {
	m.ErrorsTotal.WithLabelValues(module, errType).Inc()
}
