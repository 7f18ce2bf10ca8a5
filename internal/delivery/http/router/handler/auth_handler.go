// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"solarad/config"
	"solarad/internal/delivery/http/middleware"
	"solarad/internal/delivery/http/response"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc      usecase.AccountUsecase
	session *config.SessionConfig
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AccountUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		session: cfg.Session,
		logger:  logger,
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles the employee self-registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrMissingField
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.Fields{"user": toAccountView(account)})
}

// Login handles the sign-in request and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidCredentials
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidCredentials
	}

	output, err := h.uc.Authenticate(c.Request().Context(), usecase.AuthenticateInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionID)

	return response.OK(c, response.Fields{"user": output.Identity})
}

// Logout destroys the caller's session and clears the cookie. A missing or
// unknown session still succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.session.CookieName); err == nil && cookie.Value != "" {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	h.clearSessionCookie(c)

	return response.OK(c, nil)
}

// Me returns the account behind the caller's session.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	account, err := h.uc.CurrentUser(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.Fields{"user": toAccountView(account)})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     h.session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(h.session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
