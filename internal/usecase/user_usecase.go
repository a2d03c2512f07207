package usecase

import (
	"context"

	"openshop/internal/domain/entity"
	"openshop/internal/dto"

	"github.com/google/uuid"
)

// UserUsecase covers the caller's own profile and address book.
// Every method resolves the current user from the principal first.
type UserUsecase interface {
	GetCurrentUser(ctx context.Context, principal *entity.Principal) (*dto.UserResponse, error)
	UpdateCurrentUser(ctx context.Context, principal *entity.Principal, req *dto.UserUpdateRequest) (*dto.UserResponse, error)

	GetAddresses(ctx context.Context, principal *entity.Principal) ([]*dto.AddressResponse, error)
	AddAddress(ctx context.Context, principal *entity.Principal, req *dto.AddressRequest) (*dto.AddressResponse, error)
	UpdateUserAddress(ctx context.Context, principal *entity.Principal, addressID uuid.UUID, req *dto.AddressRequest) (*dto.AddressResponse, error)
	DeleteUserAddress(ctx context.Context, principal *entity.Principal, addressID uuid.UUID) error
}
