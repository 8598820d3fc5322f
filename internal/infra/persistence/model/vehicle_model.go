package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleModel maps the vehicle registry's 'vehicles' table. The service only reads it.
type VehicleModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	RegistrationNumber string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Make               string    `gorm:"type:varchar(64)"`
	Model              string    `gorm:"type:varchar(64)"`
	Year               int
	Color              string    `gorm:"type:varchar(32)"`
	VerificationStatus string    `gorm:"type:varchar(32)"`
	Mileage            int
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerNIC           string    `gorm:"column:owner_nic;type:varchar(20);index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
