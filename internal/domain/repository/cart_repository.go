package repository

import (
	"context"

	"openshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository persists carts and their items.
type CartRepository interface {
	// FindByUserID loads the user's cart with items and their variants, oldest item first.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// SaveItem inserts a new item or updates an existing one.
	SaveItem(ctx context.Context, item *entity.CartItem) error

	// DeleteItem removes a single item.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// ClearItems removes every item of a cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
