// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"openshop/internal/domain/entity"
	"openshop/internal/dto"
)

// AuthUsecase defines registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// RegisterUser creates a user with the USER role and an empty cart.
	RegisterUser(ctx context.Context, req *dto.UserRegisterRequest) (*entity.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}
