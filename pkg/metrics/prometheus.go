// Package metrics provides Prometheus metrics for the resume builder.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every collector. A nil *Manager is valid and records nothing.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	autosaveWrites  *prometheus.CounterVec
	storageFailures *prometheus.CounterVec
	submissions     *prometheus.CounterVec
	aiCalls         *prometheus.CounterVec
	aiLatency       *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom histogram buckets for latency metrics.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}

// WithRegistry uses the given registry instead of a fresh one.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// NewManager creates a metrics manager on its own registry so default Go
// process collectors stay out of the exposition.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "resume",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.autosaveWrites = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "editor", Name: "autosave_total",
		Help: "Debounced draft writes by outcome.",
	}, []string{"outcome"})
	m.storageFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "storage", Name: "failures_total",
		Help: "Storage failures by slot and kind.",
	}, []string{"slot", "kind"})
	m.submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "submissions", Name: "changes_total",
		Help: "Submission list changes by action.",
	}, []string{"action"})
	m.aiCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "ai", Name: "calls_total",
		Help: "Text generation calls by operation and outcome.",
	}, []string{"operation", "outcome"})
	m.aiLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "ai", Name: "call_duration_seconds",
		Help: "Text generation call latency.", Buckets: m.histogramBuckets,
	}, []string{"operation"})
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http", Name: "requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "http", Name: "request_duration_seconds",
		Help: "HTTP request latency.", Buckets: m.histogramBuckets,
	}, []string{"method", "route"})

	m.registry.MustRegister(
		m.autosaveWrites, m.storageFailures, m.submissions,
		m.aiCalls, m.aiLatency, m.httpRequests, m.httpDuration,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) RecordAutosave(outcome string) {
	if m == nil {
		return
	}
	m.autosaveWrites.WithLabelValues(outcome).Inc()
}

func (m *Manager) RecordStorageFailure(slot, kind string) {
	if m == nil {
		return
	}
	m.storageFailures.WithLabelValues(slot, kind).Inc()
}

func (m *Manager) RecordSubmission(action string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(action).Inc()
}

func (m *Manager) RecordAICall(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.aiCalls.WithLabelValues(operation, outcome).Inc()
	m.aiLatency.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Manager) RecordHTTPRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
