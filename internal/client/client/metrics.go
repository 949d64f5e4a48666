package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// transportMetrics counts and times outbound API requests. With a nil
// registerer the collectors exist but are not exported anywhere.
type transportMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newTransportMetrics(reg prometheus.Registerer) *transportMetrics {
	f := promauto.With(reg)
	return &transportMetrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "netflex",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Outbound API requests by HTTP status code and method.",
			},
			[]string{"code", "method"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "netflex",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Outbound API request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

func (m *transportMetrics) instrument(next http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperCounter(m.requests,
		promhttp.InstrumentRoundTripperDuration(m.duration, next))
}
