package postgres

import (
	"context"
	"testing"

	"openshop/internal/domain/entity"
	"openshop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_ItemLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "cart@example.com")
	category := createTestCategory(t, db, "apparel")
	_, variant := createTestProduct(t, db, category, "CART-1", "4.00", 10)
	repo := NewCartRepository(db)

	cart, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	item := &entity.CartItem{CartID: cart.ID, Variant: variant, Quantity: 2}
	item.Reprice()
	require.NoError(t, repo.SaveItem(ctx, item))
	assert.NotEqual(t, uuid.Nil, item.ID)

	item.Quantity = 3
	item.Reprice()
	require.NoError(t, repo.SaveItem(ctx, item))

	cart, err = repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, "CART-1", cart.Items[0].Variant.SKU)
	assert.True(t, decimal.RequireFromString("12.00").Equal(cart.TotalPrice()))

	require.NoError(t, repo.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, repo.DeleteItem(ctx, item.ID), repository.ErrCartItemNotFound)
}

func TestCartRepository_ClearItems(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db, "clear@example.com")
	category := createTestCategory(t, db, "apparel")
	_, first := createTestProduct(t, db, category, "CLR-1", "1.00", 10)
	_, second := createTestProduct(t, db, category, "CLR-2", "2.00", 10)
	repo := NewCartRepository(db)

	cart, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	for _, variant := range []*entity.Variant{first, second} {
		item := &entity.CartItem{CartID: cart.ID, Variant: variant, Quantity: 1}
		item.Reprice()
		require.NoError(t, repo.SaveItem(ctx, item))
	}

	require.NoError(t, repo.ClearItems(ctx, cart.ID))
	require.NoError(t, repo.ClearItems(ctx, cart.ID))

	cart, err = repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartRepository_MissingCart(t *testing.T) {
	db := newTestDB(t)

	_, err := NewCartRepository(db).FindByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}
