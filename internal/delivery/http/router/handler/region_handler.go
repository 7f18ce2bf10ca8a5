package handler

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"solarad/internal/delivery/http/response"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegionHandler serves the static Thai administrative reference data and the
// address-search proxy.
type RegionHandler struct {
	regions   service.RegionDirectory
	addresses service.AddressSearcher
	logger    *slog.Logger
}

// NewRegionHandler is the constructor for RegionHandler, injected by Fx.
func NewRegionHandler(regions service.RegionDirectory, addresses service.AddressSearcher, logger *slog.Logger) *RegionHandler {
	return &RegionHandler{
		regions:   regions,
		addresses: addresses,
		logger:    logger,
	}
}

// Provinces returns every province.
func (h *RegionHandler) Provinces(c echo.Context) error {
	provinces, err := h.regions.Provinces(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"provinces": provinces})
}

// Amphures returns the districts of one province.
func (h *RegionHandler) Amphures(c echo.Context) error {
	provinceID, err := strconv.Atoi(c.Param("provinceId"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	amphures, err := h.regions.AmphuresByProvince(c.Request().Context(), provinceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"amphures": amphures})
}

// Tambons returns the subdistricts of one district.
func (h *RegionHandler) Tambons(c echo.Context) error {
	amphureID, err := strconv.Atoi(c.Param("amphureId"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	tambons, err := h.regions.TambonsByAmphure(c.Request().Context(), amphureID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"tambons": tambons})
}

// All returns the full three-level hierarchy in one payload.
func (h *RegionHandler) All(c echo.Context) error {
	data, err := h.regions.All(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"data": data})
}

// SearchAddress proxies a free-text address lookup. An upstream outage
// degrades to an empty result, never a user-facing error.
func (h *RegionHandler) SearchAddress(c echo.Context) error {
	results, err := h.addresses.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		h.logger.Warn("Address search failed, returning empty result",
			slog.String("error", err.Error()),
		)
		results = json.RawMessage("[]")
	}

	return response.OK(c, response.Fields{"results": results})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, response.Fields{"status": "ok"})
}
