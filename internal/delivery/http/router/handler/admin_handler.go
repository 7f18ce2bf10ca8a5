package handler

import (
	"log/slog"

	"solarad/internal/delivery/http/middleware"
	"solarad/internal/delivery/http/response"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/repository"
	"solarad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin console handlers.
type AdminHandler struct {
	accounts  usecase.AccountUsecase
	interests usecase.InterestUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(accounts usecase.AccountUsecase, interests usecase.InterestUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		accounts:  accounts,
		interests: interests,
		logger:    logger,
	}
}

type createUserRequest struct {
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required"`
	FullName string      `json:"full_name" validate:"required"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Role     entity.Role `json:"role"`
}

type updateUserRequest struct {
	FullName string      `json:"full_name" validate:"required"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Role     entity.Role `json:"role" validate:"required"`
	IsActive bool        `json:"is_active"`
	Password string      `json:"password"`
}

// ListInterests returns all disposition records matching the query filters.
func (h *AdminHandler) ListInterests(c echo.Context) error {
	var filter repository.InterestFilter

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.InterestStatus(raw)
		if !status.IsValid() {
			return domainerrors.ErrInvalidStatus
		}

		filter.Status = &status
	}

	if raw := c.QueryParam("employee_id"); raw != "" {
		employeeID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("employee_id must be a uuid")
		}

		filter.EmployeeID = &employeeID
	}

	interests, err := h.interests.ListForAdmin(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"interests": toInterestViews(interests)})
}

// ApproveInterest stamps a disposition record as approved by the caller.
func (h *AdminHandler) ApproveInterest(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	interestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	interest, err := h.interests.Approve(c.Request().Context(), interestID, identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"interest": toInterestView(interest)})
}

// Stats returns the dashboard counters.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.interests.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"stats": stats})
}

// ListUsers returns every account, newest first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	accounts, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"users": toAccountViews(accounts)})
}

// CreateUser creates an account with a caller-chosen role.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingField
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.accounts.CreateByAdmin(c.Request().Context(), usecase.CreateAccountInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.Fields{"user": toAccountView(account)})
}

// UpdateUser replaces an account's mutable fields.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingField
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	err = h.accounts.UpdateAccount(c.Request().Context(), usecase.UpdateAccountInput{
		ID:       targetID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		IsActive: req.IsActive,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil)
}

// DeleteUser removes an account. Deleting one's own account is rejected.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.accounts.DeleteAccount(c.Request().Context(), identity.ID, targetID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil)
}
