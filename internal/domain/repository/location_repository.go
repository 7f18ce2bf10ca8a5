package repository

import (
	"context"
	"errors"

	"solarad/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is a domain-specific error returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationFilter narrows a catalog search. Zero-value fields are ignored.
type LocationFilter struct {
	// ProvinceTH and DistrictTH are matched exactly against the stored
	// Thai region names.
	ProvinceTH string
	DistrictTH string

	// Type filters by category.
	Type entity.LocationType

	// Search is matched case-insensitively as a substring of name or address.
	Search string

	// Limit caps the result set. Callers must set it; the catalog never
	// returns an unbounded scan.
	Limit int
}

// LocationRepository defines the standard operations for location persistence.
type LocationRepository interface {
	// Create persists a new location entity to the storage.
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a single location by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// Search returns locations matching the filter, newest first.
	Search(ctx context.Context, filter LocationFilter) ([]*entity.Location, error)

	// Count returns the total number of persisted locations.
	Count(ctx context.Context) (int64, error)
}
