package postgres

import (
	"solarad/internal/errors"
	"solarad/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date with the persistence models.
// It runs once at startup before the HTTP server begins accepting traffic.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.AccountModel{},
		&model.LocationModel{},
		&model.InterestModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
