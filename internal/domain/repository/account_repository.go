// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"solarad/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves a single account by its login handle.
	// The handle is matched case-insensitively against the stored value.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAll returns every account ordered newest first.
	ListAll(ctx context.Context) ([]*entity.Account, error)

	// CountActiveByRole counts active accounts holding the given role.
	CountActiveByRole(ctx context.Context, role entity.Role) (int64, error)
}
