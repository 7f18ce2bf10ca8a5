package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterestStatus is an employee's recorded judgment about a location.
type InterestStatus string

const (
	// StatusInterested records a customer who wants a follow-up.
	StatusInterested InterestStatus = "interested"
	// StatusNotInterested records a declined pitch.
	StatusNotInterested InterestStatus = "not_interested"
)

// String returns the string representation of the InterestStatus.
func (s InterestStatus) String() string {
	return string(s)
}

// IsValid checks if the InterestStatus is a valid value.
func (s InterestStatus) IsValid() bool {
	switch s {
	case StatusInterested, StatusNotInterested:
		return true
	default:
		return false
	}
}

// ElectricityUsage describes when the customer consumes most electricity.
type ElectricityUsage string

const (
	UsageDay   ElectricityUsage = "day"
	UsageNight ElectricityUsage = "night"
	UsageBoth  ElectricityUsage = "both"
)

// IsValid checks if the ElectricityUsage is a valid value.
func (u ElectricityUsage) IsValid() bool {
	switch u {
	case UsageDay, UsageNight, UsageBoth:
		return true
	default:
		return false
	}
}

// Interest is one employee's disposition toward one location. There is at
// most one record per (location, employee) pair; a resubmission overwrites
// the stored record wholesale.
type Interest struct {
	ID         uuid.UUID
	LocationID uuid.UUID
	EmployeeID uuid.UUID
	Status     InterestStatus

	// Customer intake, meaningful only while Status is interested. When the
	// employee switches away from interested the fields keep their previous
	// values but are no longer displayed.
	MonthlyElectricBill *float64
	ElectricityUsage    *ElectricityUsage
	CustomerName        string
	CustomerPhone       string
	Notes               string

	// Approval is a one-way flag stamped by an admin.
	IsApproved bool
	ApprovedBy *uuid.UUID
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined references, populated by list queries.
	Location *Location
	Employee *Identity
	Approver *Identity
}
