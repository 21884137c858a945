package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kochabx/formkit/errors"
)

// Client tracks outgoing REST calls.
type Client struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewClient registers the HTTP client collectors on reg.
func NewClient(reg prometheus.Registerer) (*Client, error) {
	c := &Client{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "requests_total",
			Help:      "Outgoing requests by method and status class.",
		}, []string{"method", "status_class"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Outgoing request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	for _, col := range []prometheus.Collector{c.requests, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe records a finished request. Status 0 means no response arrived.
func (c *Client) Observe(method string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(method, errors.Class(status)).Inc()
	c.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
