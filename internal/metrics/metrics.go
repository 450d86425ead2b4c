// Package metrics exposes Prometheus collectors for the capture pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "second_brain"

// Capture outcomes.
const (
	OutcomeFiled     = "filed"
	OutcomePending   = "pending"
	OutcomeDuplicate = "duplicate"
	OutcomeFailed    = "failed"
)

// Metrics holds every collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	captures        *prometheus.CounterVec
	captureDuration prometheus.Histogram
	confirmations   *prometheus.CounterVec
	corrections     *prometheus.CounterVec
	digests         *prometheus.CounterVec
}

// New registers the collectors plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		captures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captures_total",
			Help:      "Captured messages by outcome, category and classification source.",
		}, []string{"outcome", "category", "source"}),
		captureDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "capture_duration_seconds",
			Help:      "Time from receiving a message to filing or parking it.",
			Buckets:   prometheus.DefBuckets,
		}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmations_total",
			Help:      "Resolved pending confirmations by category and whether the suggestion was accepted.",
		}, []string{"category", "accepted"}),
		corrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corrections_total",
			Help:      "Applied corrections by source and target category.",
		}, []string{"from", "to"}),
		digests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "digests_total",
			Help:      "Digest runs by trigger and status.",
		}, []string{"trigger", "status"}),
	}

	m.registry.MustRegister(
		m.captures,
		m.captureDuration,
		m.confirmations,
		m.corrections,
		m.digests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveCapture(outcome, category, source string, took time.Duration) {
	m.captures.WithLabelValues(outcome, category, source).Inc()
	m.captureDuration.Observe(took.Seconds())
}

func (m *Metrics) ObserveConfirmation(category string, accepted bool) {
	a := "false"
	if accepted {
		a = "true"
	}
	m.confirmations.WithLabelValues(category, a).Inc()
}

func (m *Metrics) ObserveCorrection(from, to string) {
	m.corrections.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveDigest(trigger string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.digests.WithLabelValues(trigger, status).Inc()
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveCapture(string, string, string, time.Duration) {}
func (Nop) ObserveConfirmation(string, bool)                     {}
func (Nop) ObserveCorrection(string, string)                     {}
func (Nop) ObserveDigest(string, error)                          {}
