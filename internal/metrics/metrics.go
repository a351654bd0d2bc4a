// Package metrics provides Prometheus metrics collection for the BlinkLean service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ZoneResolutionsTotal counts serviceability resolutions by outcome.
	ZoneResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zone_resolutions_total",
			Help: "Total number of zone serviceability resolutions",
		},
		[]string{"proximity"},
	)

	// ScrapPredictionsTotal counts basket predictions by fraud flag and status.
	ScrapPredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scrap_predictions_total",
			Help: "Total number of scrap basket predictions",
		},
		[]string{"status", "fraud"},
	)

	// ScrapPredictionDuration tracks basket prediction duration.
	ScrapPredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scrap_prediction_duration_seconds",
			Help:    "Scrap basket prediction duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// FallbackRateTotal counts items priced with the fallback material rate.
	FallbackRateTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scrap_fallback_rate_total",
			Help: "Total number of items priced with the fallback rate",
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordResolution records a zone resolution outcome.
func RecordResolution(proximity string) {
	ZoneResolutionsTotal.WithLabelValues(proximity).Inc()
}

// RecordPrediction records metrics for a basket prediction.
func RecordPrediction(duration time.Duration, status string, fraud bool) {
	ScrapPredictionDuration.Observe(duration.Seconds())
	ScrapPredictionsTotal.WithLabelValues(status, strconv.FormatBool(fraud)).Inc()
}

// RecordFallbackRate records an item priced with the fallback rate.
func RecordFallbackRate() {
	FallbackRateTotal.Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}
