package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationSource marks where a search result came from.
type LocationSource string

const (
	// SourceLocal marks a record persisted in the local catalog.
	SourceLocal LocationSource = "local"
	// SourceOpenStreetMap marks a record fetched live from the Overpass API.
	// Such records carry a synthetic identifier and are never persisted.
	SourceOpenStreetMap LocationSource = "openstreetmap"
)

// RegionRef references one level of the Thai administrative hierarchy.
type RegionRef struct {
	Code   string `json:"code,omitempty"`
	NameTH string `json:"name_th,omitempty"`
	NameEN string `json:"name_en,omitempty"`
}

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a candidate sales location. Records created through the API are
// persisted; records merged in from the external map-data service exist only
// in search responses.
type Location struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Province    RegionRef
	District    RegionRef
	Subdistrict RegionRef
	PostalCode  string
	Type        LocationType
	Coordinate  *Coordinate
	OSMID       string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
