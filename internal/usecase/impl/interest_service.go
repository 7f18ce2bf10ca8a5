package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "solarad/internal/delivery/context"
	"solarad/internal/domain/entity"
	domainerrors "solarad/internal/domain/errors"
	"solarad/internal/domain/repository"
	"solarad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// interestService implements the InterestUsecase interface.
type interestService struct {
	txManager    repository.TransactionManager
	interestRepo repository.InterestRepository
	accountRepo  repository.AccountRepository
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// InterestServiceParams holds dependencies for interestService, injected by Fx.
type InterestServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	InterestRepo repository.InterestRepository
	AccountRepo  repository.AccountRepository
	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewInterestService is the constructor for interestService.
func NewInterestService(params InterestServiceParams) usecase.InterestUsecase {
	return &interestService{
		txManager:    params.TxManager,
		interestRepo: params.InterestRepo,
		accountRepo:  params.AccountRepo,
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *interestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordDisposition upserts the record for the (location, employee) pair.
// Status always overwrites; customer intake fields only overwrite when the
// new status is interested, so a later "not interested" keeps the history.
func (srv *interestService) RecordDisposition(ctx context.Context, input usecase.RecordDispositionInput) (*entity.Interest, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus
	}
	if input.ElectricityUsage != nil && !input.ElectricityUsage.IsValid() {
		return nil, domainerrors.ErrInvalidUsage
	}

	var recorded *entity.Interest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		interestRepo := repoFactory.InterestRepo()

		interest := &entity.Interest{
			LocationID: input.LocationID,
			EmployeeID: input.EmployeeID,
			Status:     input.Status,
		}
		if input.Status == entity.StatusInterested {
			interest.MonthlyElectricBill = input.MonthlyElectricBill
			interest.ElectricityUsage = input.ElectricityUsage
			interest.CustomerName = input.CustomerName
			interest.CustomerPhone = input.CustomerPhone
			interest.Notes = input.Notes
		} else {
			existing, err := interestRepo.FindByPair(ctx, input.LocationID, input.EmployeeID)
			if err != nil && !errors.Is(err, repository.ErrInterestNotFound) {
				return errors.Wrap(err, "failed to load existing interest record")
			}
			if existing != nil {
				interest.MonthlyElectricBill = existing.MonthlyElectricBill
				interest.ElectricityUsage = existing.ElectricityUsage
				interest.CustomerName = existing.CustomerName
				interest.CustomerPhone = existing.CustomerPhone
				interest.Notes = existing.Notes
			}
		}

		if err := interestRepo.Upsert(ctx, interest); err != nil {
			return err
		}

		// The conflict path does not report the surviving row, so read it
		// back for a complete result.
		stored, err := interestRepo.FindByPair(ctx, input.LocationID, input.EmployeeID)
		if err != nil {
			return errors.Wrap(err, "failed to reload interest record")
		}
		recorded = stored

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Disposition recorded",
		slog.Any("locationID", input.LocationID),
		slog.Any("employeeID", input.EmployeeID),
		slog.String("status", input.Status.String()),
	)

	return recorded, nil
}

// ListMine returns the employee's records, newest first.
func (srv *interestService) ListMine(ctx context.Context, employeeID uuid.UUID) ([]*entity.Interest, error) {
	interests, err := srv.interestRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own interest records")
	}

	return interests, nil
}

// ListForAdmin returns records matching the filter, newest first.
func (srv *interestService) ListForAdmin(ctx context.Context, filter repository.InterestFilter) ([]*entity.Interest, error) {
	interests, err := srv.interestRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interest records")
	}

	return interests, nil
}

// Approve stamps the record as approved by the admin. Re-approval re-stamps
// with the new admin and time; a not_interested record cannot be approved.
func (srv *interestService) Approve(ctx context.Context, id, adminID uuid.UUID) (*entity.Interest, error) {
	var approved *entity.Interest
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		interestRepo := repoFactory.InterestRepo()

		interest, err := interestRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrInterestNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to load interest record for approval")
		}

		if interest.Status != entity.StatusInterested {
			return domainerrors.ErrApproveNotInterested
		}

		now := time.Now()
		interest.IsApproved = true
		interest.ApprovedBy = &adminID
		interest.ApprovedAt = &now

		if err := interestRepo.Update(ctx, interest); err != nil {
			return err
		}
		approved = interest

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Interest approved", slog.Any("interestID", id), slog.Any("approvedBy", adminID))

	return approved, nil
}

// Stats computes the dashboard counters.
func (srv *interestService) Stats(ctx context.Context) (*usecase.InterestStats, error) {
	stats := &usecase.InterestStats{}

	var err error
	if stats.TotalInterested, err = srv.interestRepo.CountByStatus(ctx, entity.StatusInterested); err != nil {
		return nil, errors.Wrap(err, "failed to count interested records")
	}
	if stats.TotalNotInterested, err = srv.interestRepo.CountByStatus(ctx, entity.StatusNotInterested); err != nil {
		return nil, errors.Wrap(err, "failed to count not-interested records")
	}
	if stats.TotalApproved, err = srv.interestRepo.CountApproved(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count approved records")
	}
	if stats.TotalEmployees, err = srv.accountRepo.CountActiveByRole(ctx, entity.RoleEmployee); err != nil {
		return nil, errors.Wrap(err, "failed to count employees")
	}
	if stats.TotalLocations, err = srv.locationRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count locations")
	}

	return stats, nil
}
