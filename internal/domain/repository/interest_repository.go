package repository

import (
	"context"
	"errors"

	"solarad/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInterestNotFound is a domain-specific error returned when an interest record is not found.
var ErrInterestNotFound = errors.New("interest record not found")

// InterestFilter narrows an admin listing. Nil fields are ignored.
type InterestFilter struct {
	Status     *entity.InterestStatus
	EmployeeID *uuid.UUID
}

// InterestRepository defines the standard operations for interest-record persistence.
type InterestRepository interface {
	// Upsert inserts the record or, when a record for the same
	// (location, employee) pair already exists, replaces its mutable fields.
	// The storage layer's unique constraint on the pair makes concurrent
	// duplicate submissions collapse into the overwrite case.
	Upsert(ctx context.Context, interest *entity.Interest) error

	// FindByPair retrieves the record for a (location, employee) pair.
	FindByPair(ctx context.Context, locationID, employeeID uuid.UUID) (*entity.Interest, error)

	// FindByID retrieves a single record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Interest, error)

	// Update modifies an existing record.
	Update(ctx context.Context, interest *entity.Interest) error

	// ListByEmployee returns all records for the employee, newest first,
	// with the Location reference joined in.
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*entity.Interest, error)

	// List returns all records matching the filter, newest first, with
	// Location, Employee and Approver references joined in.
	List(ctx context.Context, filter InterestFilter) ([]*entity.Interest, error)

	// CountByStatus counts records holding the given status.
	CountByStatus(ctx context.Context, status entity.InterestStatus) (int64, error)

	// CountApproved counts records with the approval flag set.
	CountApproved(ctx context.Context) (int64, error)
}
