package httpclient

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the prometheus collectors shared by all service clients.
type Metrics struct {
	attempts *prometheus.CounterVec
	retries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the client collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_http_attempts_total",
			Help: "HTTP attempts issued per upstream service, method and status.",
		}, []string{"service", "method", "code"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_http_retries_total",
			Help: "Retries issued per upstream service.",
		}, []string{"service"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "upstream_http_attempt_duration_seconds",
			Help:    "Duration of individual HTTP attempts.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method"}),
	}
	reg.MustRegister(m.attempts, m.retries, m.duration)
	return m
}
