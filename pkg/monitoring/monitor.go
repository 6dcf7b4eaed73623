package monitoring

import (
	"learning_progress_backend/internal/model"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	CompletionUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learning_module_completion_updates_total",
			Help: "Completion updates by requested state and result",
		},
		[]string{"completed", "result"},
	)

	ModulesCompleted = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "learning_modules_completed",
			Help: "Number of modules currently marked completed",
		},
	)

	ProgressPercentage = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "learning_progress_percentage",
			Help: "Overall completion percentage",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(CompletionUpdates)
		prometheus.MustRegister(ModulesCompleted)
		prometheus.MustRegister(ProgressPercentage)
	})
}

// ObserveProgress 同步进度相关的 gauge
func ObserveProgress(stats model.ProgressStats) {
	ModulesCompleted.Set(float64(stats.Completed))
	ProgressPercentage.Set(float64(stats.Percentage))
}

func ObserveCompletionUpdate(completed bool, err error) {
	result := "ok"
	if err != nil {
		result = "not_found"
	}
	CompletionUpdates.WithLabelValues(strconv.FormatBool(completed), result).Inc()
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
