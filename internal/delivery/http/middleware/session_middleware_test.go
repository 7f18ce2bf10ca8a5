package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"solarad/config"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/service"
	mockService "solarad/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingHandler collects slog records for assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)

	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func (h *recordingHandler) levelCount(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	count := 0
	for _, r := range h.records {
		if r.Level == level {
			count++
		}
	}

	return count
}

const testCookieName = "solarad_session"

func createTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockService.MockSessionStore) {
	sessions := mockService.NewMockSessionStore(t)
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: testCookieName}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSessionMiddleware(sessions, cfg, logger), sessions
}

func newSessionContext(cookieValue string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/my-interests", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookieValue})
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestSessionMiddleware_Authenticate_MissingCookie(t *testing.T) {
	m, _ := createTestSessionMiddleware(t)

	next := func(c echo.Context) error { return nil }
	err := m.Authenticate(next)(newSessionContext(""))

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionMiddleware_Authenticate_UnknownSession(t *testing.T) {
	m, sessions := createTestSessionMiddleware(t)

	sessions.On("Get", mock.Anything, "stale-session").
		Return(nil, service.ErrSessionNotFound)

	next := func(c echo.Context) error { return nil }
	err := m.Authenticate(next)(newSessionContext("stale-session"))

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionMiddleware_Authenticate_WrappedStaleSession(t *testing.T) {
	sessions := mockService.NewMockSessionStore(t)
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: testCookieName}}
	logs := &recordingHandler{}
	m := NewSessionMiddleware(sessions, cfg, slog.New(logs))

	// Stores may annotate the sentinel; the wrapped form is still a stale
	// session, not a store failure.
	sessions.On("Get", mock.Anything, "stale-session").
		Return(nil, errors.Wrap(service.ErrSessionNotFound, "redis get"))

	next := func(c echo.Context) error { return nil }
	err := m.Authenticate(next)(newSessionContext("stale-session"))

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.Zero(t, logs.levelCount(slog.LevelError))
}

func TestSessionMiddleware_Authenticate_StoresIdentity(t *testing.T) {
	m, sessions := createTestSessionMiddleware(t)

	identity := &entity.Identity{
		ID:       uuid.New(),
		Username: "somchai",
		Role:     entity.RoleEmployee,
	}
	sessions.On("Get", mock.Anything, "live-session").Return(identity, nil)

	c := newSessionContext("live-session")
	var seen *entity.Identity
	next := func(c echo.Context) error {
		seen, _ = GetIdentity(c)

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	require.NotNil(t, seen)
	assert.Equal(t, identity.ID, seen.ID)
	assert.Equal(t, "live-session", GetSessionID(c))
}

func TestSessionMiddleware_RequireAdmin(t *testing.T) {
	m, _ := createTestSessionMiddleware(t)

	next := func(c echo.Context) error { return nil }

	// Without Authenticate the chain treats the caller as signed out.
	err := m.RequireAdmin(next)(newSessionContext(""))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	employeeCtx := newSessionContext("")
	employeeCtx.Set(keyIdentity, &entity.Identity{ID: uuid.New(), Role: entity.RoleEmployee})
	err = m.RequireAdmin(next)(employeeCtx)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	adminCtx := newSessionContext("")
	adminCtx.Set(keyIdentity, &entity.Identity{ID: uuid.New(), Role: entity.RoleAdmin})
	assert.NoError(t, m.RequireAdmin(next)(adminCtx))
}
