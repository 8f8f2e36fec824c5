// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blogapi"

var (
	// HTTPRequests counts handled requests by method, route template and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by method and route template.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ErrorResponses counts error responses by error kind.
	ErrorResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "error_responses_total",
		Help:      "Total number of error responses by kind",
	}, []string{"kind"})
)

func ObserveRequest(method, route, status string, start time.Time) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func ObserveError(kind string) {
	ErrorResponses.WithLabelValues(kind).Inc()
}
