package postgres

import (
	"autoconnect/internal/errors"
	"autoconnect/internal/infra/persistence/model"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate brings the schema to the latest version. The vehicles and users tables
// belong to the registry and the directory; they are created here only so a fresh
// database can serve local development.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20261001_create_directory_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.UserModel{}, &model.VehicleModel{})
			},
		},
		{
			ID: "20261001_create_added_vehicle_requests",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.AddedVehicleRequestModel{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&model.AddedVehicleRequestModel{})
			},
		},
		{
			ID: "20261002_unique_open_added_vehicle_requests",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ` + activeRequestIndex + `
					ON added_vehicle_requests (vehicle_id, added_by, purpose)
					WHERE is_active AND status IN ('PENDING', 'ACTIVE')`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`DROP INDEX IF EXISTS ` + activeRequestIndex).Error
			},
		},
	})

	if err := m.Migrate(); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
