package model

import (
	"time"

	"autoconnect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AddedVehicleRequestModel is the GORM-specific struct for the 'added_vehicle_requests' table.
// Sub-records are stored as JSONB; the uniqueness of open requests is enforced by the
// partial index created in the migrations.
type AddedVehicleRequestModel struct {
	ID             uuid.UUID                                  `gorm:"type:uuid;primary_key"`
	VehicleID      uuid.UUID                                  `gorm:"type:uuid;not null;index"`
	AddedBy        uuid.UUID                                  `gorm:"type:uuid;not null;index"`
	VehicleOwner   uuid.UUID                                  `gorm:"type:uuid;not null"`
	OwnerNIC       string                                     `gorm:"column:owner_nic;type:varchar(20);not null;index"`
	Purpose        string                                     `gorm:"type:varchar(32);not null;default:SERVICE_BOOKING"`
	Status         string                                     `gorm:"type:varchar(16);not null;default:PENDING;index"`
	Priority       string                                     `gorm:"type:varchar(16);not null;default:MEDIUM"`
	Notes          string                                     `gorm:"type:text"`
	ScheduledDate  *time.Time                                 `gorm:"index"`
	ServiceDetails datatypes.JSONType[entity.ServiceDetails]  `gorm:"type:jsonb;not null"`
	ContactInfo    datatypes.JSONType[entity.ContactInfo]     `gorm:"type:jsonb;not null"`
	Location       datatypes.JSONType[entity.Location]        `gorm:"type:jsonb;not null"`
	Metadata       datatypes.JSONType[entity.RequestMetadata] `gorm:"type:jsonb;not null"`
	SubmittedAt    time.Time                                  `gorm:"not null"`
	LastUpdated    time.Time                                  `gorm:"not null"`
	UpdatedBy      *uuid.UUID                                 `gorm:"type:uuid"`
	CompletedBy    *uuid.UUID                                 `gorm:"type:uuid"`
	CompletedAt    *time.Time                                 `gorm:"type:timestamptz"`
	IsActive       bool                                       `gorm:"not null;default:true;index"`
	Version        int64                                      `gorm:"not null;default:1"`
	CreatedAt      time.Time                                  `gorm:"not null;index"`
	UpdatedAt      time.Time                                  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AddedVehicleRequestModel) TableName() string {
	return "added_vehicle_requests"
}
