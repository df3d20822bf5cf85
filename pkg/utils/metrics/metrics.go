package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oncall_override_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oncall_override_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Background task metrics
	TasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oncall_override_tasks_total",
			Help: "Total number of background tasks by outcome",
		},
		[]string{"task", "outcome"},
	)

	TaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "oncall_override_task_duration_seconds",
			Help:    "Duration of background tasks in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"task"},
	)

	// Directory cache metrics
	DirectoryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oncall_override_directory_cache_lookups_total",
			Help: "Directory cache lookups by result (hit, miss, stale)",
		},
		[]string{"result"},
	)

	// Override metrics
	OverridesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oncall_override_overrides_total",
			Help: "Override attempts by outcome",
		},
		[]string{"source", "outcome"},
	)

	NotificationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oncall_override_notification_fallbacks_total",
			Help: "Failure notifications by the channel that finally delivered them",
		},
		[]string{"delivered_via"},
	)
)

// Task outcomes
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomePanicked  = "panicked"
	OutcomeDropped   = "dropped"
)
