package usecase

import (
	"context"

	"openshop/internal/domain/entity"
	"openshop/internal/dto"

	"github.com/google/uuid"
)

// CartUsecase manages the caller's shopping cart.
type CartUsecase interface {
	GetCart(ctx context.Context, principal *entity.Principal) (*dto.CartResponse, error)
	AddItem(ctx context.Context, principal *entity.Principal, req *dto.CartItemRequest) (*dto.CartResponse, error)
	UpdateItemQuantity(ctx context.Context, principal *entity.Principal, itemID uuid.UUID, quantity int) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, principal *entity.Principal, itemID uuid.UUID) (*dto.CartResponse, error)
	ClearCart(ctx context.Context, principal *entity.Principal) error
}
