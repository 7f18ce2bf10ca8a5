// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"solarad/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new employee account.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Email    string
	Phone    string
}

// AuthenticateInput defines the data required to sign in.
type AuthenticateInput struct {
	Username string
	Password string
}

// CreateAccountInput defines the data an admin supplies when creating an
// account directly. A blank role defaults to employee.
type CreateAccountInput struct {
	Username string
	Password string
	FullName string
	Email    string
	Phone    string
	Role     entity.Role
}

// UpdateAccountInput replaces the mutable fields of an account. A non-empty
// Password also rotates the credential.
type UpdateAccountInput struct {
	ID       uuid.UUID
	FullName string
	Email    string
	Phone    string
	Role     entity.Role
	IsActive bool
	Password string
}

// --- Output DTOs ---

// AuthenticateOutput returns the opened session and the signed-in identity.
type AuthenticateOutput struct {
	SessionID string
	Identity  entity.Identity
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register self-registers a new employee account.
	Register(ctx context.Context, input RegisterInput) (*entity.Account, error)

	// Authenticate verifies credentials and opens a session.
	Authenticate(ctx context.Context, input AuthenticateInput) (*AuthenticateOutput, error)

	// Logout destroys a session. Unknown session ids succeed silently.
	Logout(ctx context.Context, sessionID string) error

	// CurrentUser loads the full account behind a signed-in identity.
	CurrentUser(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// CreateByAdmin creates an account with a caller-chosen role.
	CreateByAdmin(ctx context.Context, input CreateAccountInput) (*entity.Account, error)

	// UpdateAccount replaces an account's mutable fields. Updating an
	// unknown id is a silent no-op.
	UpdateAccount(ctx context.Context, input UpdateAccountInput) error

	// DeleteAccount removes an account. The caller cannot delete itself.
	DeleteAccount(ctx context.Context, callerID, targetID uuid.UUID) error

	// ListAccounts returns every account, newest first.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// SeedDefaults provisions the default admin and demo employee when
	// their role has no active account yet. Run once at startup.
	SeedDefaults(ctx context.Context) error
}
