package handler

import (
	"log/slog"

	"solarad/internal/delivery/http/middleware"
	"solarad/internal/delivery/http/response"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InterestHandler holds dependencies for the employee-facing interest handlers.
type InterestHandler struct {
	uc     usecase.InterestUsecase
	logger *slog.Logger
}

// NewInterestHandler is the constructor for InterestHandler, injected by Fx.
func NewInterestHandler(uc usecase.InterestUsecase, logger *slog.Logger) *InterestHandler {
	return &InterestHandler{
		uc:     uc,
		logger: logger,
	}
}

type recordInterestRequest struct {
	LocationID          uuid.UUID                `json:"location_id" validate:"required"`
	Status              entity.InterestStatus    `json:"status" validate:"required"`
	MonthlyElectricBill *float64                 `json:"monthly_electric_bill"`
	ElectricityUsage    *entity.ElectricityUsage `json:"electricity_usage"`
	CustomerName        string                   `json:"customer_name"`
	CustomerPhone       string                   `json:"customer_phone"`
	Notes               string                   `json:"notes"`
}

// Record upserts the caller's disposition for a location.
func (h *InterestHandler) Record(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req recordInterestRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidStatus
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	interest, err := h.uc.RecordDisposition(c.Request().Context(), usecase.RecordDispositionInput{
		LocationID:          req.LocationID,
		EmployeeID:          identity.ID,
		Status:              req.Status,
		MonthlyElectricBill: req.MonthlyElectricBill,
		ElectricityUsage:    req.ElectricityUsage,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		Notes:               req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"interest": toInterestView(interest)})
}

// ListMine returns the caller's disposition records, newest first.
func (h *InterestHandler) ListMine(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	interests, err := h.uc.ListMine(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"interests": toInterestViews(interests)})
}
