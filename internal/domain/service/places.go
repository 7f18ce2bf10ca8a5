package service

import (
	"context"

	"solarad/internal/domain/entity"
)

// PlacesQuery narrows an external map search to a region and category.
type PlacesQuery struct {
	// ProvinceTH is the Thai province name; it anchors the search area.
	ProvinceTH string

	// DistrictTH optionally tightens the search area around the province.
	DistrictTH string

	// Type selects which map features to look for.
	Type entity.LocationType
}

// PlacesService looks up real-world places from an external map source.
// Results are transient suggestions; they are not persisted unless an
// employee records a visit against them.
type PlacesService interface {
	// Search returns places in the queried area matching the category.
	// A failure of the external source degrades to an empty result at the
	// caller's discretion; implementations return the underlying error.
	Search(ctx context.Context, query PlacesQuery) ([]*entity.Location, error)
}
