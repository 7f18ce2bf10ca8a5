package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. Region references are
// denormalized into name/code columns so catalog searches stay a single
// table scan.
type LocationModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name    string    `gorm:"type:varchar(255);not null;index"`
	Address string    `gorm:"type:text"`

	ProvinceCode  string `gorm:"type:varchar(10)"`
	ProvinceTH    string `gorm:"type:varchar(100);index"`
	ProvinceEN    string `gorm:"type:varchar(100)"`
	DistrictCode  string `gorm:"type:varchar(10)"`
	DistrictTH    string `gorm:"type:varchar(100);index"`
	DistrictEN    string `gorm:"type:varchar(100)"`
	SubdistrictTH string `gorm:"type:varchar(100)"`
	SubdistrictEN string `gorm:"type:varchar(100)"`
	PostalCode    string `gorm:"type:varchar(10)"`

	Type string `gorm:"type:varchar(50);not null;index"`

	Lat *float64
	Lng *float64

	OSMID string `gorm:"column:osm_id;type:varchar(50)"`

	CreatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
