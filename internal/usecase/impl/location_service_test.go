package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/repository"
	"solarad/internal/domain/service"
	mockRepo "solarad/internal/mocks/repository"
	mockSvc "solarad/internal/mocks/service"
	"solarad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	places       *mockSvc.MockPlacesService
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	places := mockSvc.NewMockPlacesService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		Places:       places,
		Logger:       logger,
	})

	return locationServiceFixtures{
		service:      svc,
		locationRepo: locationRepo,
		places:       places,
	}
}

func TestLocationService_ListTypes(t *testing.T) {
	fixtures := createTestLocationService(t)

	items := fixtures.service.ListTypes()
	require.Len(t, items, 8)

	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "บ้านพักอาศัย", items[0].Name)
	assert.Equal(t, 8, items[7].ID)
	assert.Equal(t, "อื่นๆ", items[7].Name)
}

func TestLocationService_Create_Success(t *testing.T) {
	fixtures := createTestLocationService(t)
	ctx := context.Background()
	creatorID := uuid.New()

	fixtures.locationRepo.On("Create", ctx, mock.AnythingOfType("*entity.Location")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Location).ID = uuid.New()
		}).
		Return(nil)

	location, err := fixtures.service.Create(ctx, usecase.CreateLocationInput{
		Name:      " โรงแรมริมน้ำ ",
		Type:      entity.LocationTypeHotel,
		Province:  entity.RegionRef{NameTH: "กรุงเทพมหานคร"},
		CreatedBy: creatorID,
	})
	require.NoError(t, err)

	assert.Equal(t, "โรงแรมริมน้ำ", location.Name)
	assert.Equal(t, creatorID, location.CreatedBy)
}

func TestLocationService_Create_KeepsExternalID(t *testing.T) {
	fixtures := createTestLocationService(t)
	ctx := context.Background()

	// Saving a hit picked from the external search carries its map id into
	// the catalog record.
	fixtures.locationRepo.On("Create", ctx, mock.MatchedBy(func(location *entity.Location) bool {
		return location.OSMID == "osm_240571965"
	})).Return(nil)

	location, err := fixtures.service.Create(ctx, usecase.CreateLocationInput{
		Name:       "โรงแรมจากแผนที่",
		Type:       entity.LocationTypeHotel,
		ExternalID: "osm_240571965",
		CreatedBy:  uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, "osm_240571965", location.OSMID)
}

func TestLocationService_Create_Validation(t *testing.T) {
	fixtures := createTestLocationService(t)
	ctx := context.Background()

	_, err := fixtures.service.Create(ctx, usecase.CreateLocationInput{
		Name: "  ",
		Type: entity.LocationTypeHotel,
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingLocationName)

	_, err = fixtures.service.Create(ctx, usecase.CreateLocationInput{
		Name: "ที่ไหนสักแห่ง",
		Type: "ประเภทลึกลับ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidLocationType)
}

func TestLocationService_Search_LocalOnly(t *testing.T) {
	fixtures := createTestLocationService(t)
	ctx := context.Background()

	stored := []*entity.Location{{ID: uuid.New(), Name: "โรงแรมหนึ่ง"}}
	fixtures.locationRepo.On("Search", ctx, repository.LocationFilter{
		ProvinceTH: "ภูเก็ต",
		Type:       entity.LocationTypeHotel,
		Search:     "ริมหาด",
		Limit:      100,
	}).Return(stored, nil)

	results, err := fixtures.service.Search(ctx, usecase.SearchLocationsInput{
		ProvinceTH: "ภูเก็ต",
		Type:       entity.LocationTypeHotel,
		Search:     "ริมหาด",
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, entity.SourceLocal, results[0].Source)
}

func TestLocationService_Search_FiltersRequiredForExternal(t *testing.T) {
	fixtures := createTestLocationService(t)
	ctx := context.Background()

	// Missing type.
	_, err := fixtures.service.Search(ctx, usecase.SearchLocationsInput{
		ProvinceTH:      "ภูเก็ต",
		IncludeExternal: true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSearchFiltersRequired)

	// Missing province.
	_, err = fixtures.service.Search(ctx, usecase.SearchLocationsInput{
		Type:            entity.LocationTypeHotel,
		IncludeExternal: true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSearchFiltersRequired)
}

func TestLocationService_Search_MergesExternal(t *testing.T) {
	fixtures := createTestLocationService(t)
	ctx := context.Background()

	stored := []*entity.Location{{ID: uuid.New(), Name: "โรงแรมท้องถิ่น"}}
	fixtures.locationRepo.On("Search", ctx, mock.AnythingOfType("repository.LocationFilter")).
		Return(stored, nil)
	fixtures.places.On("Search", ctx, service.PlacesQuery{
		ProvinceTH: "ภูเก็ต",
		Type:       entity.LocationTypeHotel,
	}).Return([]*entity.Location{
		{Name: "โรงแรมจากแผนที่", OSMID: "osm_42"},
	}, nil)

	results, err := fixtures.service.Search(ctx, usecase.SearchLocationsInput{
		ProvinceTH:      "ภูเก็ต",
		Type:            entity.LocationTypeHotel,
		IncludeExternal: true,
	})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, entity.SourceLocal, results[0].Source)
	assert.Equal(t, entity.SourceOpenStreetMap, results[1].Source)
	assert.Equal(t, "osm_42", results[1].Location.OSMID)
}

func TestLocationService_Search_ExternalFailureDegrades(t *testing.T) {
	fixtures := createTestLocationService(t)
	ctx := context.Background()

	stored := []*entity.Location{{ID: uuid.New(), Name: "โรงแรมท้องถิ่น"}}
	fixtures.locationRepo.On("Search", ctx, mock.AnythingOfType("repository.LocationFilter")).
		Return(stored, nil)
	fixtures.places.On("Search", ctx, mock.AnythingOfType("service.PlacesQuery")).
		Return(nil, errors.New("all overpass mirrors failed"))

	results, err := fixtures.service.Search(ctx, usecase.SearchLocationsInput{
		ProvinceTH:      "ภูเก็ต",
		Type:            entity.LocationTypeHotel,
		IncludeExternal: true,
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, entity.SourceLocal, results[0].Source)
}
