// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for an account. It owns its addresses and its cart;
// roles are shared references.
type User struct {
	ID           uuid.UUID  // Generated identifier.
	Email        string     // Unique login identifier, also the principal name.
	Name         string     // Display name.
	PasswordHash string     // One-way bcrypt hash of the password.
	Roles        []*Role    // Granted roles, at least USER after registration.
	Addresses    []*Address // Owned addresses in insertion order.
	Cart         *Cart      // Exactly one cart, created at registration.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleNames returns the names of the roles granted to the user.
func (u *User) RoleNames() Roles {
	names := make(Roles, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}

	return names
}

// FindAddress returns the address with the given id from the user's own collection.
func (u *User) FindAddress(id uuid.UUID) (*Address, bool) {
	for _, addr := range u.Addresses {
		if addr.ID == id {
			return addr, true
		}
	}

	return nil, false
}

// RemoveAddress drops the address with the given id from the user's collection.
// It reports whether anything was removed.
func (u *User) RemoveAddress(id uuid.UUID) bool {
	for i, addr := range u.Addresses {
		if addr.ID == id {
			u.Addresses = append(u.Addresses[:i], u.Addresses[i+1:]...)

			return true
		}
	}

	return false
}
