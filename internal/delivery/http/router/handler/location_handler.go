package handler

import (
	"log/slog"

	"solarad/internal/delivery/http/middleware"
	"solarad/internal/delivery/http/response"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for location-catalog handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

type createLocationRequest struct {
	Name        string              `json:"name" validate:"required"`
	Address     string              `json:"address"`
	Province    entity.RegionRef    `json:"province"`
	District    entity.RegionRef    `json:"district"`
	Subdistrict entity.RegionRef    `json:"subdistrict"`
	PostalCode  string              `json:"postal_code"`
	Type        entity.LocationType `json:"location_type" validate:"required"`
	Coordinate  *entity.Coordinate  `json:"coordinates"`
	OSMID       string              `json:"osm_id"`
}

// ListTypes returns the fixed category enumeration.
func (h *LocationHandler) ListTypes(c echo.Context) error {
	return response.OK(c, response.Fields{"types": h.uc.ListTypes()})
}

// Create adds a location to the catalog.
func (h *LocationHandler) Create(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingLocationName
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	location, err := h.uc.Create(c.Request().Context(), usecase.CreateLocationInput{
		Name:        req.Name,
		Address:     req.Address,
		Province:    req.Province,
		District:    req.District,
		Subdistrict: req.Subdistrict,
		PostalCode:  req.PostalCode,
		Type:        req.Type,
		Coordinate:  req.Coordinate,
		ExternalID:  req.OSMID,
		CreatedBy:   identity.ID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.Fields{"location": toLocationView(location, entity.SourceLocal)})
}

// Search queries the catalog, optionally merged with live map-data results.
func (h *LocationHandler) Search(c echo.Context) error {
	input := usecase.SearchLocationsInput{
		ProvinceTH:      c.QueryParam("province"),
		DistrictTH:      c.QueryParam("district"),
		Type:            entity.LocationType(c.QueryParam("type")),
		Search:          c.QueryParam("search"),
		IncludeExternal: c.QueryParam("include_external") == "true",
	}

	results, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"locations": toLocationResultViews(results)})
}
