package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_api",
		Name:      "requests_total",
		Help:      "Count of HTTP API requests.",
	}, []string{"method", "route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "http_api",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "code"})
)

// HTTP tracks requests served by the JSON API.
type HTTP struct{}

func NewHTTP() *HTTP {
	return &HTTP{}
}

// ObserveRequest records one request by its route pattern.
func (HTTP) ObserveRequest(method, route string, code int, started time.Time) {
	c := strconv.Itoa(code)
	route = labelOrUnknown(route)
	httpRequestsTotal.WithLabelValues(method, route, c).Inc()
	httpRequestDuration.WithLabelValues(method, route, c).Observe(time.Since(started).Seconds())
}
