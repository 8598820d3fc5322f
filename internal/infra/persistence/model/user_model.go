package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps the user directory's 'users' table. The service only reads it.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(128)"`
	Email     string    `gorm:"type:varchar(255);index"`
	Phone     string    `gorm:"type:varchar(20)"`
	NICNumber string    `gorm:"column:nic_number;type:varchar(20);index"`
	Role      string    `gorm:"type:varchar(32);not null;default:user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
