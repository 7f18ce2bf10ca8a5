package handler

import (
	"time"

	"solarad/internal/domain/entity"
	"solarad/internal/usecase"

	"github.com/google/uuid"
)

// accountView is the client-facing shape of an account. It never carries the
// password hash.
type accountView struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	FullName  string      `json:"full_name"`
	Email     string      `json:"email,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Role      entity.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
}

func toAccountView(account *entity.Account) accountView {
	return accountView{
		ID:        account.ID,
		Username:  account.Username,
		FullName:  account.FullName,
		Email:     account.Email,
		Phone:     account.Phone,
		Role:      account.Role,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
	}
}

func toAccountViews(accounts []*entity.Account) []accountView {
	views := make([]accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toAccountView(account))
	}

	return views
}

// locationView is the client-facing shape of a location. External search hits
// carry a zero id, an osm_id and a non-local source.
type locationView struct {
	ID          uuid.UUID             `json:"id,omitempty"`
	Name        string                `json:"name"`
	Address     string                `json:"address,omitempty"`
	Province    entity.RegionRef      `json:"province,omitempty"`
	District    entity.RegionRef      `json:"district,omitempty"`
	Subdistrict entity.RegionRef      `json:"subdistrict,omitempty"`
	PostalCode  string                `json:"postal_code,omitempty"`
	Type        entity.LocationType   `json:"location_type"`
	Coordinate  *entity.Coordinate    `json:"coordinates,omitempty"`
	OSMID       string                `json:"osm_id,omitempty"`
	Source      entity.LocationSource `json:"source,omitempty"`
	CreatedBy   uuid.UUID             `json:"created_by,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

func toLocationView(location *entity.Location, source entity.LocationSource) locationView {
	return locationView{
		ID:          location.ID,
		Name:        location.Name,
		Address:     location.Address,
		Province:    location.Province,
		District:    location.District,
		Subdistrict: location.Subdistrict,
		PostalCode:  location.PostalCode,
		Type:        location.Type,
		Coordinate:  location.Coordinate,
		OSMID:       location.OSMID,
		Source:      source,
		CreatedBy:   location.CreatedBy,
		CreatedAt:   location.CreatedAt,
	}
}

func toLocationResultViews(results []*usecase.LocationResult) []locationView {
	views := make([]locationView, 0, len(results))
	for _, result := range results {
		views = append(views, toLocationView(result.Location, result.Source))
	}

	return views
}

// interestView is the client-facing shape of an interest record. Customer
// intake fields are hidden once the status is not interested.
type interestView struct {
	ID         uuid.UUID             `json:"id"`
	LocationID uuid.UUID             `json:"location_id"`
	EmployeeID uuid.UUID             `json:"employee_id"`
	Status     entity.InterestStatus `json:"status"`

	MonthlyElectricBill *float64                 `json:"monthly_electric_bill,omitempty"`
	ElectricityUsage    *entity.ElectricityUsage `json:"electricity_usage,omitempty"`
	CustomerName        string                   `json:"customer_name,omitempty"`
	CustomerPhone       string                   `json:"customer_phone,omitempty"`
	Notes               string                   `json:"notes,omitempty"`

	IsApproved bool       `json:"is_approved"`
	ApprovedBy *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Location *locationView    `json:"location,omitempty"`
	Employee *entity.Identity `json:"employee,omitempty"`
	Approver *entity.Identity `json:"approver,omitempty"`
}

func toInterestView(interest *entity.Interest) interestView {
	view := interestView{
		ID:         interest.ID,
		LocationID: interest.LocationID,
		EmployeeID: interest.EmployeeID,
		Status:     interest.Status,
		IsApproved: interest.IsApproved,
		ApprovedBy: interest.ApprovedBy,
		ApprovedAt: interest.ApprovedAt,
		CreatedAt:  interest.CreatedAt,
		UpdatedAt:  interest.UpdatedAt,
		Employee:   interest.Employee,
		Approver:   interest.Approver,
	}

	if interest.Status == entity.StatusInterested {
		view.MonthlyElectricBill = interest.MonthlyElectricBill
		view.ElectricityUsage = interest.ElectricityUsage
		view.CustomerName = interest.CustomerName
		view.CustomerPhone = interest.CustomerPhone
		view.Notes = interest.Notes
	}

	if interest.Location != nil {
		location := toLocationView(interest.Location, entity.SourceLocal)
		view.Location = &location
	}

	return view
}

func toInterestViews(interests []*entity.Interest) []interestView {
	views := make([]interestView, 0, len(interests))
	for _, interest := range interests {
		views = append(views, toInterestView(interest))
	}

	return views
}
