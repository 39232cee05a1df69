package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the process-wide metrics collector. It owns a private registry
// so tests can build isolated instances; main creates one and hands it to the
// handlers. Counters and histograms accumulate for the process lifetime and
// are safe under concurrent increment/observe.
type Metrics struct {
	registry *prometheus.Registry

	// Request rate per (endpoint, status). Watch for: 404 spikes (bad
	// clients) and any 500s at all (generation should never fail).
	RequestCount *prometheus.CounterVec

	// Request latency per endpoint. Observed exactly once per request,
	// whatever the outcome.
	RequestLatency *prometheus.HistogramVec
}

// NewMetrics builds a collector with the runtime collectors plus the weather
// request series registered.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	m := &Metrics{registry: registry}
	m.RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_request_count",
			Help: "Total number of weather requests",
		},
		[]string{"endpoint", "status"},
	)
	m.RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_request_latency_seconds",
			Help:    "Request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	registry.MustRegister(m.RequestCount, m.RequestLatency)
	return m
}

// RecordRequest increments the request counter for the endpoint/status pair.
func (m *Metrics) RecordRequest(endpoint string, status int) {
	m.RequestCount.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// ObserveLatency records elapsed wall-clock time for one request.
func (m *Metrics) ObserveLatency(endpoint string, elapsed time.Duration) {
	m.RequestLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// Handler returns an http.Handler serving this collector's registry in the
// Prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
