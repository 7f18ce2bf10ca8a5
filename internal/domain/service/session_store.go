package service

import (
	"context"
	"errors"

	"solarad/internal/domain/entity"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines the interface for server-side session management.
// Sessions carry a signed-in identity and expire on inactivity; reading a
// session refreshes its lifetime.
type SessionStore interface {
	// Create opens a new session for the identity and returns its opaque id.
	Create(ctx context.Context, identity entity.Identity) (string, error)

	// Get resolves a session id back to the stored identity and slides the
	// expiry window forward. Returns ErrSessionNotFound for unknown or
	// expired ids.
	Get(ctx context.Context, id string) (*entity.Identity, error)

	// Destroy removes a session. Destroying an unknown id is a no-op.
	Destroy(ctx context.Context, id string) error
}
