// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"openshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Lookup misses are reported with sentinel errors, never with nil results.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")
)

// UserRepository persists the User aggregate.
type UserRepository interface {
	// FindByID loads a user with roles, addresses and cart.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail loads a user with roles, addresses and cart.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts the user together with its role links and cart.
	// A duplicate email is reported as domainerrors.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// Update saves the user's own columns. Associations are not touched.
	Update(ctx context.Context, user *entity.User) error
}

// RoleRepository reads the shared role records.
type RoleRepository interface {
	FindByRoleName(ctx context.Context, name string) (*entity.Role, error)
}
