package api

import (
	"net/http"

	// Packages
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

/////////////////////////////////////////////////////////////////////////////
// TYPES

// Metrics holds the collectors for the API, on their own registry
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	speech   *prometheus.CounterVec
}

/////////////////////////////////////////////////////////////////////////////
// GLOBALS

const namespace = "voice"

/////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"handler", "code", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of API requests in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"handler", "code", "method"},
		),
		speech: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "speech_bytes_total",
				Help:      "Total bytes of synthesized audio",
			},
			[]string{"provider"},
		),
	}
	m.registry.MustRegister(m.requests, m.duration, m.speech)
	return m
}

/////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Handler returns the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

/////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// instrument counts and times requests to a named handler
func (m *Metrics) instrument(name string, fn http.HandlerFunc) http.HandlerFunc {
	labels := prometheus.Labels{"handler": name}
	return promhttp.InstrumentHandlerDuration(m.duration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.requests.MustCurryWith(labels), fn),
	)
}

func (m *Metrics) speechBytes(provider string, n int) {
	m.speech.WithLabelValues(provider).Add(float64(n))
}
