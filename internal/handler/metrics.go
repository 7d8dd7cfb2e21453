package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the validator backend.
var Metrics = struct {
	ValidationsTotal *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DBPoolActive     prometheus.GaugeFunc
	DBPoolIdle       prometheus.GaugeFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
// pool is nil unless the postgres backend is active.
func InitMetrics(pool *pgxpool.Pool) {
	Metrics.ValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "segval_validations_total",
			Help: "Total validation verdicts submitted, by status.",
		},
		[]string{"status"},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "segval_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "segval_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// DB pool gauges — live stats from pgxpool, postgres backend only
	if pool != nil {
		Metrics.DBPoolActive = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "segval_db_connection_pool_active",
				Help: "Number of active database connections.",
			},
			func() float64 {
				return float64(pool.Stat().AcquiredConns())
			},
		)

		Metrics.DBPoolIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "segval_db_connection_pool_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(pool.Stat().IdleConns())
			},
		)

		prometheus.MustRegister(Metrics.DBPoolActive)
		prometheus.MustRegister(Metrics.DBPoolIdle)
	}

	prometheus.MustRegister(
		Metrics.ValidationsTotal,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers.
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/validations/"):
		return "/api/validations/:videoId"
	case strings.HasPrefix(path, "/api/status/"):
		return "/api/status/:videoId"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.Context())
		return nil
	}
}
