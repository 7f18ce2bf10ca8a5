package postgres

import (
	"context"

	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/repository"
	"solarad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Create persists a new location entity to the database.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingLocationName.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByID retrieves a single location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// Search returns locations matching the filter, newest first.
func (repo *locationRepository) Search(ctx context.Context, filter repository.LocationFilter) ([]*entity.Location, error) {
	query := repo.db.WithContext(ctx).Model(&model.LocationModel{})

	if filter.ProvinceTH != "" {
		query = query.Where("province_th = ?", filter.ProvinceTH)
	}
	if filter.DistrictTH != "" {
		query = query.Where("district_th = ?", filter.DistrictTH)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR address ILIKE ?", pattern, pattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var locationMs []*model.LocationModel
	if err := query.Order("created_at DESC").Find(&locationMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search locations")
	}

	locations := make([]*entity.Location, 0, len(locationMs))
	for _, locationM := range locationMs {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// Count returns the total number of persisted locations.
func (repo *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count locations")
	}

	return count, nil
}

// toLocationDomain maps the persistence model back to a pure domain entity.
func toLocationDomain(locationM *model.LocationModel) *entity.Location {
	location := &entity.Location{
		ID:      locationM.ID,
		Name:    locationM.Name,
		Address: locationM.Address,
		Province: entity.RegionRef{
			Code:   locationM.ProvinceCode,
			NameTH: locationM.ProvinceTH,
			NameEN: locationM.ProvinceEN,
		},
		District: entity.RegionRef{
			Code:   locationM.DistrictCode,
			NameTH: locationM.DistrictTH,
			NameEN: locationM.DistrictEN,
		},
		Subdistrict: entity.RegionRef{
			NameTH: locationM.SubdistrictTH,
			NameEN: locationM.SubdistrictEN,
		},
		PostalCode: locationM.PostalCode,
		Type:       entity.LocationType(locationM.Type),
		OSMID:      locationM.OSMID,
		CreatedBy:  locationM.CreatedBy,
		CreatedAt:  locationM.CreatedAt,
		UpdatedAt:  locationM.UpdatedAt,
	}

	if locationM.Lat != nil && locationM.Lng != nil {
		location.Coordinate = &entity.Coordinate{
			Lat: *locationM.Lat,
			Lng: *locationM.Lng,
		}
	}

	return location
}

// fromLocationDomain maps a pure domain entity to a GORM persistence model.
func fromLocationDomain(location *entity.Location) *model.LocationModel {
	locationM := &model.LocationModel{
		ID:            location.ID,
		Name:          location.Name,
		Address:       location.Address,
		ProvinceCode:  location.Province.Code,
		ProvinceTH:    location.Province.NameTH,
		ProvinceEN:    location.Province.NameEN,
		DistrictCode:  location.District.Code,
		DistrictTH:    location.District.NameTH,
		DistrictEN:    location.District.NameEN,
		SubdistrictTH: location.Subdistrict.NameTH,
		SubdistrictEN: location.Subdistrict.NameEN,
		PostalCode:    location.PostalCode,
		Type:          location.Type.String(),
		OSMID:         location.OSMID,
		CreatedBy:     location.CreatedBy,
		CreatedAt:     location.CreatedAt,
		UpdatedAt:     location.UpdatedAt,
	}

	if location.Coordinate != nil {
		lat := location.Coordinate.Lat
		lng := location.Coordinate.Lng
		locationM.Lat = &lat
		locationM.Lng = &lng
	}

	return locationM
}
