package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockService "solarad/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRegionHandler(t *testing.T) (*RegionHandler, *mockService.MockAddressSearcher) {
	addresses := mockService.NewMockAddressSearcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRegionHandler(mockService.NewMockRegionDirectory(t), addresses, logger), addresses
}

func newQueryContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRegionHandler_SearchAddress_PassesThrough(t *testing.T) {
	handler, addresses := createTestRegionHandler(t)

	matches := json.RawMessage(`[{"district":"บางรัก","zipcode":"10500"}]`)
	addresses.On("Search", mock.Anything, "บางรัก").Return(matches, nil)

	c, rec := newQueryContext("/api/thailand/search?query=" + "บางรัก")
	require.NoError(t, handler.SearchAddress(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "บางรัก")
}

func TestRegionHandler_SearchAddress_UpstreamOutageDegrades(t *testing.T) {
	handler, addresses := createTestRegionHandler(t)

	addresses.On("Search", mock.Anything, "บางรัก").
		Return(nil, errors.New("address search failed: status 502"))

	c, rec := newQueryContext("/api/thailand/search?query=" + "บางรัก")
	require.NoError(t, handler.SearchAddress(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[]`)
}
