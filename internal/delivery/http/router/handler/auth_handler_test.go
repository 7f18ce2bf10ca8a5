package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"solarad/config"
	"solarad/internal/delivery/http/validator"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountUsecaseStub implements usecase.AccountUsecase with swappable funcs.
type accountUsecaseStub struct {
	authenticate func(ctx context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error)
	logout       func(ctx context.Context, sessionID string) error
}

func (s *accountUsecaseStub) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Account, error) {
	return nil, nil
}

func (s *accountUsecaseStub) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	return s.authenticate(ctx, input)
}

func (s *accountUsecaseStub) Logout(ctx context.Context, sessionID string) error {
	return s.logout(ctx, sessionID)
}

func (s *accountUsecaseStub) CurrentUser(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return nil, nil
}

func (s *accountUsecaseStub) CreateByAdmin(ctx context.Context, input usecase.CreateAccountInput) (*entity.Account, error) {
	return nil, nil
}

func (s *accountUsecaseStub) UpdateAccount(ctx context.Context, input usecase.UpdateAccountInput) error {
	return nil
}

func (s *accountUsecaseStub) DeleteAccount(ctx context.Context, callerID, targetID uuid.UUID) error {
	return nil
}

func (s *accountUsecaseStub) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return nil, nil
}

func (s *accountUsecaseStub) SeedDefaults(ctx context.Context) error {
	return nil
}

func createTestAuthHandler(uc usecase.AccountUsecase) *AuthHandler {
	return &AuthHandler{
		uc: uc,
		session: &config.SessionConfig{
			CookieName: "solarad_session",
			TTL:        24 * time.Hour,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	identity := entity.Identity{
		ID:       uuid.New(),
		Username: "somchai",
		FullName: "สมชาย ใจดี",
		Role:     entity.RoleEmployee,
	}

	handler := createTestAuthHandler(&accountUsecaseStub{
		authenticate: func(_ context.Context, input usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			assert.Equal(t, "somchai", input.Username)

			return &usecase.AuthenticateOutput{SessionID: "session-123", Identity: identity}, nil
		},
	})

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"username":"somchai","password":"secret123"}`)
	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"username":"somchai"`)
	assert.NotContains(t, rec.Body.String(), "password")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "solarad_session", cookies[0].Name)
	assert.Equal(t, "session-123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookies[0].MaxAge)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := createTestAuthHandler(&accountUsecaseStub{
		authenticate: func(context.Context, usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	})

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"username":"somchai","password":"wrong"}`)
	err := handler.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := createTestAuthHandler(&accountUsecaseStub{
		authenticate: func(context.Context, usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
			t.Fatal("authenticate must not run on invalid input")

			return nil, nil
		},
	})

	c, _ := newJSONContext(http.MethodPost, "/api/auth/login", `{"username":"somchai"}`)
	err := handler.Login(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	var destroyed string
	handler := createTestAuthHandler(&accountUsecaseStub{
		logout: func(_ context.Context, sessionID string) error {
			destroyed = sessionID

			return nil
		},
	})

	c, rec := newJSONContext(http.MethodPost, "/api/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: "solarad_session", Value: "session-123"})
	require.NoError(t, handler.Logout(c))

	assert.Equal(t, "session-123", destroyed)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Logout_WithoutSessionSucceeds(t *testing.T) {
	handler := createTestAuthHandler(&accountUsecaseStub{
		logout: func(context.Context, string) error {
			t.Fatal("logout must not hit the store without a cookie")

			return nil
		},
	})

	c, rec := newJSONContext(http.MethodPost, "/api/auth/logout", "")
	require.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
