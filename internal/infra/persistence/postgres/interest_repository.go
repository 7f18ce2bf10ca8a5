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
	"gorm.io/gorm/clause"
)

// interestRepository implements the domain.InterestRepository interface using GORM.
type interestRepository struct {
	db *gorm.DB
}

// NewInterestRepository is the constructor for interestRepository.
func NewInterestRepository(db *gorm.DB) repository.InterestRepository {
	return &interestRepository{db: db}
}

// Upsert inserts the record or overwrites the mutable fields of the existing
// record for the same (location, employee) pair. The composite unique index
// turns a concurrent duplicate insert into the update path.
func (repo *interestRepository) Upsert(ctx context.Context, interest *entity.Interest) error {
	interestM := fromInterestDomain(interest)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "location_id"}, {Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status",
				"monthly_electric_bill",
				"electricity_usage",
				"customer_name",
				"customer_phone",
				"notes",
				"updated_at",
			}),
		}).
		Create(interestM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("location or employee does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert interest record")
	}

	interest.ID = interestM.ID
	interest.CreatedAt = interestM.CreatedAt
	interest.UpdatedAt = interestM.UpdatedAt

	return nil
}

// FindByPair retrieves the record for a (location, employee) pair.
func (repo *interestRepository) FindByPair(ctx context.Context, locationID, employeeID uuid.UUID) (*entity.Interest, error) {
	var interestM model.InterestModel
	err := repo.db.WithContext(ctx).
		Where("location_id = ? AND employee_id = ?", locationID, employeeID).
		First(&interestM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInterestNotFound
		}

		return nil, errors.Wrap(err, "failed to find interest by pair")
	}

	return toInterestDomain(&interestM), nil
}

// FindByID retrieves a single record by its unique ID.
func (repo *interestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Interest, error) {
	var interestM model.InterestModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&interestM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInterestNotFound
		}

		return nil, errors.Wrap(err, "failed to find interest by id")
	}

	return toInterestDomain(&interestM), nil
}

// Update modifies an existing record.
func (repo *interestRepository) Update(ctx context.Context, interest *entity.Interest) error {
	interestM := fromInterestDomain(interest)

	if err := repo.db.WithContext(ctx).Save(interestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update interest record")
	}

	interest.UpdatedAt = interestM.UpdatedAt

	return nil
}

// ListByEmployee returns all records for the employee, newest first, with
// the location joined in.
func (repo *interestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.Interest, error) {
	var interestMs []*model.InterestModel
	err := repo.db.WithContext(ctx).
		Preload("Location").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&interestMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interests by employee")
	}

	return toInterestDomainList(interestMs), nil
}

// List returns all records matching the filter, newest first, with the
// location, employee and approver joined in.
func (repo *interestRepository) List(ctx context.Context, filter repository.InterestFilter) ([]*entity.Interest, error) {
	query := repo.db.WithContext(ctx).
		Preload("Location").
		Preload("Employee").
		Preload("Approver")

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}

	var interestMs []*model.InterestModel
	if err := query.Order("created_at DESC").Find(&interestMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list interests")
	}

	return toInterestDomainList(interestMs), nil
}

// CountByStatus counts records holding the given status.
func (repo *interestRepository) CountByStatus(ctx context.Context, status entity.InterestStatus) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.InterestModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count interests by status")
	}

	return count, nil
}

// CountApproved counts records with the approval flag set.
func (repo *interestRepository) CountApproved(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.InterestModel{}).
		Where("is_approved = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count approved interests")
	}

	return count, nil
}

func toInterestDomainList(interestMs []*model.InterestModel) []*entity.Interest {
	interests := make([]*entity.Interest, 0, len(interestMs))
	for _, interestM := range interestMs {
		interests = append(interests, toInterestDomain(interestM))
	}

	return interests
}

// toInterestDomain maps the persistence model back to a pure domain entity.
func toInterestDomain(interestM *model.InterestModel) *entity.Interest {
	interest := &entity.Interest{
		ID:                  interestM.ID,
		LocationID:          interestM.LocationID,
		EmployeeID:          interestM.EmployeeID,
		Status:              entity.InterestStatus(interestM.Status),
		MonthlyElectricBill: interestM.MonthlyElectricBill,
		CustomerName:        interestM.CustomerName,
		CustomerPhone:       interestM.CustomerPhone,
		Notes:               interestM.Notes,
		IsApproved:          interestM.IsApproved,
		ApprovedBy:          interestM.ApprovedBy,
		ApprovedAt:          interestM.ApprovedAt,
		CreatedAt:           interestM.CreatedAt,
		UpdatedAt:           interestM.UpdatedAt,
	}

	if interestM.ElectricityUsage != nil {
		usage := entity.ElectricityUsage(*interestM.ElectricityUsage)
		interest.ElectricityUsage = &usage
	}

	if interestM.Location != nil {
		interest.Location = toLocationDomain(interestM.Location)
	}
	if interestM.Employee != nil {
		employee := toAccountDomain(interestM.Employee).Identity()
		interest.Employee = &employee
	}
	if interestM.Approver != nil {
		approver := toAccountDomain(interestM.Approver).Identity()
		interest.Approver = &approver
	}

	return interest
}

// fromInterestDomain maps a pure domain entity to a GORM persistence model.
func fromInterestDomain(interest *entity.Interest) *model.InterestModel {
	interestM := &model.InterestModel{
		ID:                  interest.ID,
		LocationID:          interest.LocationID,
		EmployeeID:          interest.EmployeeID,
		Status:              interest.Status.String(),
		MonthlyElectricBill: interest.MonthlyElectricBill,
		CustomerName:        interest.CustomerName,
		CustomerPhone:       interest.CustomerPhone,
		Notes:               interest.Notes,
		IsApproved:          interest.IsApproved,
		ApprovedBy:          interest.ApprovedBy,
		ApprovedAt:          interest.ApprovedAt,
		CreatedAt:           interest.CreatedAt,
		UpdatedAt:           interest.UpdatedAt,
	}

	if interest.ElectricityUsage != nil {
		usage := string(*interest.ElectricityUsage)
		interestM.ElectricityUsage = &usage
	}

	return interestM
}
