package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests handled",
		},
		[]string{"method", "path", "code"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

var (
	ProductsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_created_total",
			Help: "Number of products created",
		},
	)
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Number of orders created",
		},
	)
	ProductCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_cache_operations_total",
			Help: "Product cache operations",
		},
		[]string{"op"}, // hit|miss|error
	)
)

func MustRegister() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ProductsCreated, OrdersCreated, ProductCacheOps)
}
