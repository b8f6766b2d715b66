package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todo", Name: "http_requests_total", Help: "Number of HTTP requests by method, route and status."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "todo", Name: "http_request_duration_seconds", Help: "HTTP request latency by method and route.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "todo", Name: "store_operations_total", Help: "Number of store calls by backend, operation and result."},
		[]string{"backend", "op", "result"},
	)
	StoreDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "todo", Name: "store_operation_duration_seconds", Help: "Store call latency by backend and operation.", Buckets: prometheus.DefBuckets},
		[]string{"backend", "op"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(StoreOperations)
	reg.MustRegister(StoreDuration)
}
