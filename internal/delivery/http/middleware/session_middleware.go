package middleware

import (
	"log/slog"

	"solarad/config"
	deliverycontext "solarad/internal/delivery/context"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	keyIdentity  = "identity"
	keySessionID = "session_id"
)

// SessionMiddleware resolves the session cookie into the caller's identity.
type SessionMiddleware struct {
	sessions   service.SessionStore
	cookieName string
	logger     *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(sessions service.SessionStore, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cfg.Session.CookieName,
		logger:     logger,
	}
}

// Authenticate requires a valid session cookie and stores the identity on the
// request for handlers further down the chain.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated
		}

		ctx := c.Request().Context()

		identity, err := m.sessions.Get(ctx, cookie.Value)
		if err != nil {
			if !errors.Is(err, service.ErrSessionNotFound) {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).
					Error("Session lookup failed", slog.String("error", err.Error()))
			}

			return domainerrors.ErrUnauthenticated
		}

		c.Set(keyIdentity, identity)
		c.Set(keySessionID, cookie.Value)

		return next(c)
	}
}

// RequireAdmin rejects callers whose session identity is not an admin.
// It must run after Authenticate.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		if identity.Role != entity.RoleAdmin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// GetIdentity returns the authenticated identity stored by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*entity.Identity)

	return identity, ok
}

// GetSessionID returns the session id stored by Authenticate.
func GetSessionID(c echo.Context) string {
	id, _ := c.Get(keySessionID).(string)

	return id
}
