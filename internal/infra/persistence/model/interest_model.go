package model

import (
	"time"

	"github.com/google/uuid"
)

// InterestModel mirrors the 'customer_interests' table. The composite unique
// index keeps one record per (location, employee) pair; concurrent duplicate
// submissions resolve through the upsert path.
type InterestModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interest_location_employee"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_interest_location_employee"`

	Status              string   `gorm:"type:varchar(20);not null;index"`
	MonthlyElectricBill *float64 `gorm:"type:numeric(12,2)"`
	ElectricityUsage    *string  `gorm:"type:varchar(10)"`
	CustomerName        string   `gorm:"type:varchar(255)"`
	CustomerPhone       string   `gorm:"type:varchar(50)"`
	Notes               string   `gorm:"type:text"`

	IsApproved bool       `gorm:"not null;default:false;index"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Location *LocationModel `gorm:"foreignKey:LocationID"`
	Employee *AccountModel  `gorm:"foreignKey:EmployeeID"`
	Approver *AccountModel  `gorm:"foreignKey:ApprovedBy"`
}

// TableName explicitly sets the table name for GORM.
func (InterestModel) TableName() string {
	return "customer_interests"
}
