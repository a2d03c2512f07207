package postgres

import (
	"context"
	"testing"

	"openshop/internal/domain/entity"
	"openshop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddress(userID uuid.UUID, city string) *entity.Address {
	return &entity.Address{
		UserID:      userID,
		AddressLine: "1 Main St",
		City:        city,
		State:       "IL",
		PostalCode:  "62701",
		Country:     "US",
	}
}

func TestAddressRepository_CreateKeepsInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAddressRepository(db)
	user := createTestUser(t, db, "addr@example.com")

	first := newTestAddress(user.ID, "Springfield")
	second := newTestAddress(user.ID, "Shelbyville")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	found, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, found.Addresses, 2)
	assert.Equal(t, first.ID, found.Addresses[0].ID)
	assert.Equal(t, second.ID, found.Addresses[1].ID)
	assert.Equal(t, user.ID, found.Addresses[0].UserID)
}

func TestAddressRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAddressRepository(db)
	user := createTestUser(t, db, "addr2@example.com")

	address := newTestAddress(user.ID, "Springfield")
	require.NoError(t, repo.Create(ctx, address))

	address.City = "Capital City"
	require.NoError(t, repo.Update(ctx, address))

	found, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, found.Addresses, 1)
	assert.Equal(t, "Capital City", found.Addresses[0].City)

	require.NoError(t, repo.Delete(ctx, address.ID))
	assert.ErrorIs(t, repo.Delete(ctx, address.ID), repository.ErrAddressNotFound)
}

func TestAddressRepository_UnknownOwner(t *testing.T) {
	db := newTestDB(t)

	err := NewAddressRepository(db).Create(context.Background(), newTestAddress(uuid.New(), "Nowhere"))
	assert.Error(t, err)
}
