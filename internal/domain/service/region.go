package service

import (
	"context"
	"encoding/json"

	"solarad/internal/domain/entity"
)

// RegionDirectory serves the Thai administrative hierarchy used by address
// forms. The data is reference material loaded once and cached in memory.
type RegionDirectory interface {
	// Provinces returns all provinces ordered by id.
	Provinces(ctx context.Context) ([]entity.Province, error)

	// AmphuresByProvince returns the districts of one province.
	AmphuresByProvince(ctx context.Context, provinceID int) ([]entity.Amphure, error)

	// TambonsByAmphure returns the subdistricts of one district.
	TambonsByAmphure(ctx context.Context, amphureID int) ([]entity.Tambon, error)

	// All returns the full hierarchy in one payload.
	All(ctx context.Context) (*entity.RegionData, error)

	// Centroid reports the approximate center of a province by its Thai
	// name. The second return is false when the province is unknown.
	Centroid(provinceTH string) (entity.Coordinate, bool)
}

// AddressSearcher proxies free-text address lookups to a third-party Thai
// address API. Matches are passed through as the upstream JSON.
type AddressSearcher interface {
	// Search returns the raw matches for the query. A blank query yields
	// an empty result without calling the upstream service.
	Search(ctx context.Context, query string) (json.RawMessage, error)
}
