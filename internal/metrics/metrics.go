// Package metrics exposes Prometheus collectors for the HTTP surface and the sports domain.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "schoolsports"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// EnrollmentTransitions counts enrollments entering a status.
	EnrollmentTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollment_transitions_total",
		Help:      "Enrollments entering a status.",
	}, []string{"status"})

	// AttendanceMarks counts recorded sessions by presence.
	AttendanceMarks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_marks_total",
		Help:      "Attendance marks recorded, by presence.",
	}, []string{"present"})

	// BulkAttendanceFailures counts items skipped by bulk attendance marking.
	BulkAttendanceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bulk_attendance_failures_total",
		Help:      "Items skipped by bulk attendance marking.",
	})

	// TournamentTransitions counts tournaments entering a status.
	TournamentTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tournament_transitions_total",
		Help:      "Tournaments entering a status.",
	}, []string{"status"})

	// MatchResultsRecorded counts recorded match results.
	MatchResultsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_results_recorded_total",
		Help:      "Match results recorded.",
	})
)

// GinMiddleware records request count and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
