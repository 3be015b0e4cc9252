package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "a2r_http_requests_total",
			Help: "HTTP requests processed, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "a2r_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	redactionJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "a2r_redaction_jobs_total",
			Help: "Redaction jobs, by outcome.",
		},
		[]string{"outcome"},
	)

	redactedSecondsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "a2r_redacted_seconds_total",
			Help: "Total seconds of audio overwritten with the masking tone.",
		},
	)
)

// Metrics records per-request counters and latency. The route template is
// used as the path label so IDs do not blow up cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// ObserveRedactionJob feeds the job-level metrics from wherever a job
// finishes (HTTP handler, batch processor or worker).
func ObserveRedactionJob(outcome string, redactedSeconds float64) {
	redactionJobsTotal.WithLabelValues(outcome).Inc()
	if redactedSeconds > 0 {
		redactedSecondsTotal.Add(redactedSeconds)
	}
}
