package usecase

import (
	"context"

	"solarad/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationTypeItem is one entry of the category enumeration endpoint.
type LocationTypeItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateLocationInput defines the data required to add a location to the
// catalog. ExternalID links a record picked from an external search result
// back to its map-data identifier.
type CreateLocationInput struct {
	Name        string
	Address     string
	Province    entity.RegionRef
	District    entity.RegionRef
	Subdistrict entity.RegionRef
	PostalCode  string
	Type        entity.LocationType
	Coordinate  *entity.Coordinate
	ExternalID  string
	CreatedBy   uuid.UUID
}

// SearchLocationsInput narrows a catalog search. IncludeExternal additionally
// queries the external map source, which requires province and type.
type SearchLocationsInput struct {
	ProvinceTH      string
	DistrictTH      string
	Type            entity.LocationType
	Search          string
	IncludeExternal bool
}

// LocationResult is a location plus its provenance. External hits are
// transient and carry a synthetic id instead of a database id.
type LocationResult struct {
	Location *entity.Location
	Source   entity.LocationSource
}

// LocationUsecase defines the interface for location-catalog business operations.
type LocationUsecase interface {
	// ListTypes enumerates the closed set of location categories.
	ListTypes() []LocationTypeItem

	// Create adds a location to the catalog.
	Create(ctx context.Context, input CreateLocationInput) (*entity.Location, error)

	// Search returns catalog matches, optionally merged with external map
	// hits. A total external failure degrades to local-only results.
	Search(ctx context.Context, input SearchLocationsInput) ([]*LocationResult, error)
}
