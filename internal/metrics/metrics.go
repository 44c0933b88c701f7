// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration is request latency in seconds, by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "habitflow",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method", "route", "status"},
	)

	// HabitToggles counts habit completion toggles by resulting state.
	HabitToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "habitflow",
			Name:      "habit_toggles_total",
			Help:      "Habit completion toggles",
		},
		[]string{"result"}, // completed / uncompleted
	)

	// TaskToggles counts task completion toggles by resulting state.
	TaskToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "habitflow",
			Name:      "task_toggles_total",
			Help:      "Task completion toggles",
		},
		[]string{"result"},
	)

	// StoreErrors counts failed store operations by operation name.
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "habitflow",
			Name:      "store_errors_total",
			Help:      "Failed database operations",
		},
		[]string{"op"},
	)
)

// ToggleResult labels a toggle outcome.
func ToggleResult(completed bool) string {
	if completed {
		return "completed"
	}
	return "uncompleted"
}
