package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "solarad/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func createTestMetricsEcho(t *testing.T) (*echo.Echo, *MetricsMiddleware) {
	t.Helper()

	m := newMetricsMiddleware(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
	e.Use(m.Process)
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/forbidden", func(c echo.Context) error {
		return domainerrors.ErrForbidden
	})

	return e, m
}

func TestMetricsMiddleware_CountsSuccess(t *testing.T) {
	e, m := createTestMetricsEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("GET", "/ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requestErrorCount.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestMetricsMiddleware_LabelsFailedRequestsWithFinalStatus(t *testing.T) {
	e, m := createTestMetricsEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forbidden", nil))

	// The error handler commits the response after the chain unwinds; the
	// observed status must be the final one, not the pre-handler default.
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestErrorCount.WithLabelValues("GET", "/forbidden", "403")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requestErrorCount.WithLabelValues("GET", "/forbidden", "200")))
}
