// Package metrics records downstream call outcomes for the gateway.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeTimeout = "timeout"
)

type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the gateway collectors on reg. A nil *Metrics is valid and
// records nothing.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "downstream_requests_total",
			Help:      "Downstream calls made by the gateway, by service and outcome.",
		}, []string{"service", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gateway",
			Name:      "downstream_request_duration_seconds",
			Help:      "Latency of downstream calls made by the gateway.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"service"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) ObserveDownstream(service, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(service, outcome).Inc()
	m.duration.WithLabelValues(service).Observe(elapsed.Seconds())
}

func (m *Metrics) Requests(service, outcome string) prometheus.Counter {
	return m.requests.WithLabelValues(service, outcome)
}
