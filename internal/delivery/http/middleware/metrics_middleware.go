package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsMiddleware tracks request counts, durations and errors per route.
type MetricsMiddleware struct {
	requestCounter    *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	requestErrorCount *prometheus.CounterVec
}

// NewMetricsMiddleware registers the HTTP metrics on the default registry.
func NewMetricsMiddleware() *MetricsMiddleware {
	return newMetricsMiddleware(prometheus.DefaultRegisterer)
}

func newMetricsMiddleware(registerer prometheus.Registerer) *MetricsMiddleware {
	factory := promauto.With(registerer)

	return &MetricsMiddleware{
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "solarad",
				Name:      "api_requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"method", "path"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "solarad",
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestErrorCount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "solarad",
				Name:      "api_errors_total",
				Help:      "Total number of API errors",
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Process records request metrics around the handler chain.
func (m *MetricsMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		method := c.Request().Method
		path := c.Path()

		m.requestCounter.With(prometheus.Labels{
			"method": method,
			"path":   path,
		}).Inc()

		// The status of a failed request is only known once the error
		// handler commits the response, after the chain unwinds, so the
		// observation runs as a response hook.
		c.Response().After(func() {
			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)

			m.requestDuration.With(prometheus.Labels{
				"method": method,
				"path":   path,
				"status": status,
			}).Observe(duration)

			if c.Response().Status >= 400 {
				m.requestErrorCount.With(prometheus.Labels{
					"method": method,
					"path":   path,
					"status": status,
				}).Inc()
			}
		})

		return next(c)
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsMiddleware) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
