package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a postal address owned by exactly one User.
type Address struct {
	ID          uuid.UUID
	UserID      uuid.UUID // Owner.
	AddressLine string
	City        string
	State       string
	PostalCode  string
	Country     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
