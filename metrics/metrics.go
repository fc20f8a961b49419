package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrollment_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enrollment_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "enrollment_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enrollment_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// AdmissionsTotal counts successfully committed student admissions
	AdmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrollment_admissions_total",
			Help: "Total number of students admitted",
		},
	)

	// QuotaRejections counts admissions rejected because the specialty quota was full
	QuotaRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrollment_quota_rejections_total",
			Help: "Total number of admissions rejected due to exhausted quota",
		},
	)

	// DuplicateCertificateRejections counts admissions rejected by the certificate
	// uniqueness guard
	DuplicateCertificateRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrollment_duplicate_certificate_rejections_total",
			Help: "Total number of admissions rejected due to a duplicate certificate number",
		},
	)

	// OperatorsProvisioned counts operator accounts issued by the credential provisioner
	OperatorsProvisioned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enrollment_operators_provisioned_total",
			Help: "Total number of operator accounts provisioned",
		},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enrollment_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "enrollment_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "enrollment_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// CacheHits counts the number of cache hits
    CacheHits = promauto.NewCounter(
        prometheus.CounterOpts{
            Name: "enrollment_cache_hits_total",
            Help: "Total number of cache hits",
        },
    )

    // CacheMisses counts the number of cache misses
    CacheMisses = promauto.NewCounter(
        prometheus.CounterOpts{
            Name: "enrollment_cache_misses_total",
            Help: "Total number of cache misses",
        },
    )
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
