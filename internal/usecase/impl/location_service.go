package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "solarad/internal/delivery/context"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/repository"
	"solarad/internal/domain/service"
	"solarad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// localSearchLimit caps a catalog scan; the UI never pages past this.
const localSearchLimit = 100

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	places       service.PlacesService
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Places       service.PlacesService
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		places:       params.Places,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTypes enumerates the closed set of location categories.
func (srv *locationService) ListTypes() []usecase.LocationTypeItem {
	types := entity.LocationTypes()

	items := make([]usecase.LocationTypeItem, 0, len(types))
	for i, locationType := range types {
		items = append(items, usecase.LocationTypeItem{
			ID:   i + 1,
			Name: locationType.String(),
		})
	}

	return items
}

// Create adds a location to the catalog.
func (srv *locationService) Create(ctx context.Context, input usecase.CreateLocationInput) (*entity.Location, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrMissingLocationName
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidLocationType
	}

	location := &entity.Location{
		Name:        name,
		Address:     input.Address,
		Province:    input.Province,
		District:    input.District,
		Subdistrict: input.Subdistrict,
		PostalCode:  input.PostalCode,
		Type:        input.Type,
		Coordinate:  input.Coordinate,
		OSMID:       input.ExternalID,
		CreatedBy:   input.CreatedBy,
	}

	if err := srv.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Location created",
		slog.Any("locationID", location.ID),
		slog.String("type", location.Type.String()),
	)

	return location, nil
}

// Search returns catalog matches, optionally merged with external map hits.
func (srv *locationService) Search(ctx context.Context, input usecase.SearchLocationsInput) ([]*usecase.LocationResult, error) {
	if input.IncludeExternal && (input.ProvinceTH == "" || input.Type == "") {
		return nil, domainerrors.ErrSearchFiltersRequired
	}

	locations, err := srv.locationRepo.Search(ctx, repository.LocationFilter{
		ProvinceTH: input.ProvinceTH,
		DistrictTH: input.DistrictTH,
		Type:       input.Type,
		Search:     input.Search,
		Limit:      localSearchLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search catalog")
	}

	results := make([]*usecase.LocationResult, 0, len(locations))
	for _, location := range locations {
		results = append(results, &usecase.LocationResult{
			Location: location,
			Source:   entity.SourceLocal,
		})
	}

	if !input.IncludeExternal {
		return results, nil
	}

	external, err := srv.places.Search(ctx, service.PlacesQuery{
		ProvinceTH: input.ProvinceTH,
		DistrictTH: input.DistrictTH,
		Type:       input.Type,
	})
	if err != nil {
		// External outage degrades to local-only results.
		srv.log(ctx).Warn("External place search failed, returning local results only",
			slog.String("error", err.Error()),
		)

		return results, nil
	}

	for _, location := range external {
		results = append(results, &usecase.LocationResult{
			Location: location,
			Source:   entity.SourceOpenStreetMap,
		})
	}

	return results, nil
}
