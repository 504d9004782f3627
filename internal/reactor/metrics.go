package reactor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus instruments for fetch attempts.
// A nil *Metrics is valid and records nothing, so the engine works in
// tests without a registry.
type Metrics struct {
	attemptsTotal   *prometheus.CounterVec
	attemptsInFlight prometheus.Gauge
	attemptDuration prometheus.Histogram
}

// NewMetrics creates and registers attempt metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reactor",
			Name:      "fetch_attempts_total",
			Help:      "Total fetch attempts by result.",
		}, []string{"result"}),
		attemptsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "reactor",
			Name:      "fetch_attempts_in_flight",
			Help:      "Fetch attempts currently outstanding.",
		}),
		attemptDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reactor",
			Name:      "fetch_attempt_duration_seconds",
			Help:      "Duration of resolved fetch attempts.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.attemptsTotal, m.attemptsInFlight, m.attemptDuration)

	return m
}

func (m *Metrics) attemptStarted() {
	if m == nil {
		return
	}

	m.attemptsInFlight.Inc()
}

func (m *Metrics) attemptResolved(success bool, duration time.Duration) {
	if m == nil {
		return
	}

	m.attemptsInFlight.Dec()
	m.attemptDuration.Observe(duration.Seconds())

	result := "success"
	if !success {
		result = "failure"
	}

	m.attemptsTotal.WithLabelValues(result).Inc()
}
