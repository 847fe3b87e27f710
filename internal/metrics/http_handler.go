package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jitcord",
		Subsystem: "http_handler",
		Name:      "requests_total",
		Help:      "Count of gateway HTTP requests.",
	}, []string{"route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jitcord",
		Subsystem: "http_handler",
		Name:      "request_duration_seconds",
		Help:      "Duration of gateway HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "code"})
)

// HTTPHandler tracks metrics for gateway requests.
type HTTPHandler struct{}

// NewHTTPHandler constructs a metrics collector for HTTP handlers.
func NewHTTPHandler() *HTTPHandler {
	return &HTTPHandler{}
}

// Observe records a served request by route pattern and status code.
func (HTTPHandler) Observe(route string, code int, started time.Time) {
	if route == "" {
		route = "unknown"
	}
	c := strconv.Itoa(code)

	httpRequestsTotal.WithLabelValues(route, c).Inc()
	httpRequestDuration.WithLabelValues(route, c).Observe(time.Since(started).Seconds())
}
