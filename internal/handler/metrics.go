package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/leadscope/leadscope-go/internal/service"
)

// Metrics holds all Prometheus collectors for the lead API.
var Metrics = struct {
	QueriesTotal     *prometheus.CounterVec
	ExportsTotal     prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DatasetLeads     prometheus.GaugeFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(svc *service.LeadService) {
	Metrics.QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadscope_queries_total",
			Help: "Total lead queries served, by sort key.",
		},
		[]string{"sort_key"},
	)

	Metrics.ExportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "leadscope_exports_total",
			Help: "Total CSV exports served.",
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leadscope_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "leadscope_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// Dataset size is fixed after load; exposing it as a gauge makes a
	// misloaded dataset visible on dashboards.
	Metrics.DatasetLeads = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "leadscope_dataset_leads",
			Help: "Number of leads in the loaded dataset.",
		},
		func() float64 {
			return float64(svc.Size())
		},
	)

	prometheus.MustRegister(
		Metrics.QueriesTotal,
		Metrics.ExportsTotal,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
		Metrics.DatasetLeads,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
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

// sanitizeEndpoint normalizes handle lookups to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	if strings.HasPrefix(path, "/api/leads/") && path != "/api/leads/export" {
		return "/api/leads/:handle"
	}
	return path
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
