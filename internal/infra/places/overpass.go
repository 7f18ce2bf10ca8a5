// Package places implements the external place search against the Overpass
// API (OpenStreetMap).
package places

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"solarad/config"
	deliverycontext "solarad/internal/delivery/context"
	"solarad/internal/domain/entity"
	"solarad/internal/domain/service"
	"solarad/internal/errors"

	"github.com/go-resty/resty/v2"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	// Half-width in degrees of the search box around the province center.
	// Narrowed when a district is given, since the area of interest shrinks.
	provinceBoxDelta = 0.25
	districtBoxDelta = 0.15
)

// overpassClient implements service.PlacesService. It walks a list of
// Overpass mirrors until one answers; the public mirrors rate-limit and
// fail independently of each other.
type overpassClient struct {
	client     *resty.Client
	mirrors    []string
	maxResults int
	regions    service.RegionDirectory
	logger     *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Regions service.RegionDirectory
	Logger  *slog.Logger
}

// NewOverpassClient is the constructor for overpassClient.
func NewOverpassClient(params Params) service.PlacesService {
	cfg := params.Config.Places

	client := resty.New().SetTimeout(cfg.Timeout)

	return newOverpassClient(client, cfg.Mirrors, cfg.MaxResults, params.Regions, params.Logger)
}

func newOverpassClient(
	client *resty.Client,
	mirrors []string,
	maxResults int,
	regions service.RegionDirectory,
	logger *slog.Logger,
) *overpassClient {
	return &overpassClient{
		client:     client,
		mirrors:    mirrors,
		maxResults: maxResults,
		regions:    regions,
		logger:     logger,
	}
}

// overpassResponse mirrors the Overpass JSON payload.
type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	ID     int64             `json:"id"`
	Type   string            `json:"type"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Search queries the mirrors in order and maps the first successful answer
// to location entities. Provinces without a known center and categories
// without tag selectors yield an empty result rather than an error.
func (c *overpassClient) Search(ctx context.Context, query service.PlacesQuery) ([]*entity.Location, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	center, ok := c.regions.Centroid(query.ProvinceTH)
	if !ok {
		logger.LogAttrs(ctx, slog.LevelWarn, "unknown province for place search",
			slog.String("province", query.ProvinceTH),
		)

		return []*entity.Location{}, nil
	}

	selectors, ok := osmSelectors[query.Type]
	if !ok {
		return []*entity.Location{}, nil
	}

	overpassQuery := c.buildQuery(center, query.DistrictTH != "", selectors)

	var lastErr error
	for _, mirror := range c.mirrors {
		var result overpassResponse
		resp, err := c.client.R().
			SetContext(ctx).
			SetQueryParam("data", overpassQuery).
			SetResult(&result).
			Get(mirror)

		if err != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "overpass mirror failed",
				slog.String("mirror", mirror),
				slog.String("error", err.Error()),
			)
			lastErr = err

			continue
		}
		if resp.IsError() {
			logger.LogAttrs(ctx, slog.LevelWarn, "overpass mirror returned error status",
				slog.String("mirror", mirror),
				slog.Int("status", resp.StatusCode()),
			)
			lastErr = errors.Errorf("overpass mirror %s: status %d", mirror, resp.StatusCode())

			continue
		}

		return c.mapElements(result.Elements, query), nil
	}

	return nil, errors.Wrap(lastErr, "all overpass mirrors failed")
}

// buildQuery assembles an Overpass QL query over a bounding box around the
// province center.
func (c *overpassClient) buildQuery(center entity.Coordinate, hasDistrict bool, selectors []string) string {
	delta := provinceBoxDelta
	if hasDistrict {
		delta = districtBoxDelta
	}

	bound := orb.Bound{
		Min: orb.Point{center.Lng - delta, center.Lat - delta},
		Max: orb.Point{center.Lng + delta, center.Lat + delta},
	}

	// Overpass bbox order is south,west,north,east.
	bbox := fmt.Sprintf("%.4f,%.4f,%.4f,%.4f", bound.Min.Y(), bound.Min.X(), bound.Max.Y(), bound.Max.X())

	var parts strings.Builder
	for _, selector := range selectors {
		fmt.Fprintf(&parts, "node%s(%s);way%s(%s);", selector, bbox, selector, bbox)
	}

	return fmt.Sprintf("[out:json][timeout:30];(%s);out body center %d;", parts.String(), c.maxResults)
}

// mapElements converts Overpass elements to location entities. Nameless
// elements are discarded; a nameless hit is unusable for door-to-door work.
func (c *overpassClient) mapElements(elements []overpassElement, query service.PlacesQuery) []*entity.Location {
	locations := make([]*entity.Location, 0, len(elements))

	for _, el := range elements {
		if len(locations) >= c.maxResults {
			break
		}

		name := el.Tags["name:th"]
		if name == "" {
			name = el.Tags["name"]
		}
		if name == "" {
			continue
		}

		address := el.Tags["addr:full"]
		if address == "" {
			address = el.Tags["addr:street"]
		}

		province := el.Tags["addr:province"]
		if province == "" {
			province = query.ProvinceTH
		}
		district := el.Tags["addr:district"]
		if district == "" {
			district = query.DistrictTH
		}

		lat, lng := el.Lat, el.Lon
		if el.Center != nil {
			lat, lng = el.Center.Lat, el.Center.Lon
		}

		locations = append(locations, &entity.Location{
			Name:        name,
			Address:     address,
			Province:    entity.RegionRef{NameTH: province},
			District:    entity.RegionRef{NameTH: district},
			Subdistrict: entity.RegionRef{NameTH: el.Tags["addr:subdistrict"]},
			PostalCode:  el.Tags["addr:postcode"],
			Type:        query.Type,
			Coordinate:  &entity.Coordinate{Lat: lat, Lng: lng},
			OSMID:       fmt.Sprintf("osm_%d", el.ID),
		})
	}

	return locations
}
