package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AddressLine string    `gorm:"type:varchar(255);not null"`
	City        string    `gorm:"type:varchar(100);not null"`
	State       string    `gorm:"type:varchar(100)"`
	PostalCode  string    `gorm:"type:varchar(20);not null"`
	Country     string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
