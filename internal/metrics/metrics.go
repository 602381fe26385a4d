// Package metrics defines the Prometheus collectors exposed at /metrics.
// Collectors are package-level and registered once at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route pattern, and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration observes request latency by route pattern.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// UsersRegistered counts successful registrations.
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total successful user registrations",
		},
	)

	// PlansCopied counts successful copy-on-save operations.
	PlansCopied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "plans_copied_total",
			Help: "Total published plans copied into a user's collection",
		},
	)
)
