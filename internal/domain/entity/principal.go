package entity

import "github.com/google/uuid"

// Principal is the authenticated caller as resolved at the delivery boundary.
// Services receive it explicitly instead of reading ambient state.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Roles  Roles
}
