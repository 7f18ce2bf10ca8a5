package usecase

import (
	"context"

	"solarad/internal/domain/entity"
	"solarad/internal/domain/repository"

	"github.com/google/uuid"
)

// RecordDispositionInput defines one employee's judgment about a location.
// Customer intake fields only persist when the status is interested.
type RecordDispositionInput struct {
	LocationID          uuid.UUID
	EmployeeID          uuid.UUID
	Status              entity.InterestStatus
	MonthlyElectricBill *float64
	ElectricityUsage    *entity.ElectricityUsage
	CustomerName        string
	CustomerPhone       string
	Notes               string
}

// InterestStats is the admin dashboard counter set.
type InterestStats struct {
	TotalInterested    int64 `json:"total_interested"`
	TotalNotInterested int64 `json:"total_not_interested"`
	TotalApproved      int64 `json:"total_approved"`
	TotalEmployees     int64 `json:"total_employees"`
	TotalLocations     int64 `json:"total_locations"`
}

// InterestUsecase defines the interface for interest-ledger business operations.
type InterestUsecase interface {
	// RecordDisposition upserts the record for the (location, employee)
	// pair. Resubmission overwrites; the operation is idempotent.
	RecordDisposition(ctx context.Context, input RecordDispositionInput) (*entity.Interest, error)

	// ListMine returns the employee's records, newest first.
	ListMine(ctx context.Context, employeeID uuid.UUID) ([]*entity.Interest, error)

	// ListForAdmin returns records matching the filter, newest first, with
	// all references joined.
	ListForAdmin(ctx context.Context, filter repository.InterestFilter) ([]*entity.Interest, error)

	// Approve stamps the record as approved by the admin. Re-approval
	// re-stamps; a not_interested record cannot be approved.
	Approve(ctx context.Context, id, adminID uuid.UUID) (*entity.Interest, error)

	// Stats computes the dashboard counters.
	Stats(ctx context.Context) (*InterestStats, error)
}
