package entity

import (
	"slices"

	"github.com/google/uuid"
)

const (
	// RoleUser is the default role granted at registration. It must exist as a seed record.
	RoleUser = "USER"
	// RoleAdmin grants access to catalog management.
	RoleAdmin = "ADMIN"
)

// Role is a named permission set shared between users.
type Role struct {
	ID   uuid.UUID
	Name string
}

// Roles is a list of role names.
type Roles []string

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role string) bool {
	return slices.Contains(rs, role)
}
