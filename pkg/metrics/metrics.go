package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder encapsulates Prometheus instrumentation for outbound backend
// calls and response normalization outcomes.
type Recorder struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	transportErrors *prometheus.CounterVec
	normalizeTotal  *prometheus.CounterVec
}

// NewRecorder registers the core collectors on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outbound_request_duration_seconds",
		Help:    "Duration of outbound backend requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "outbound_requests_total",
		Help: "Total number of outbound backend requests",
	}, []string{"method", "endpoint", "outcome"})

	transportErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "outbound_transport_errors_total",
		Help: "Transport-level failures split by kind (timeout vs network)",
	}, []string{"endpoint", "kind"})

	normalizeTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "normalize_results_total",
		Help: "Normalized backend responses by detected shape and success",
	}, []string{"shape", "success"})

	registry.MustRegister(requestDuration, requestTotal, transportErrors, normalizeTotal)

	return &Recorder{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		transportErrors: transportErrors,
		normalizeTotal:  normalizeTotal,
	}
}

// Handler exposes the registry for scraping.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return r.handler
}

// ObserveRequest records one completed outbound call.
func (r *Recorder) ObserveRequest(method, endpoint, outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.requestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	r.requestTotal.WithLabelValues(method, endpoint, outcome).Inc()
}

// RecordTransportError counts a timeout or network failure for an endpoint.
func (r *Recorder) RecordTransportError(endpoint, kind string) {
	if r == nil {
		return
	}
	r.transportErrors.WithLabelValues(endpoint, kind).Inc()
}

// RecordNormalization counts one normalizer verdict.
func (r *Recorder) RecordNormalization(shape string, success bool) {
	if r == nil {
		return
	}
	label := "false"
	if success {
		label = "true"
	}
	r.normalizeTotal.WithLabelValues(shape, label).Inc()
}
