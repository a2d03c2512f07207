// Package dto holds the request and response shapes exchanged over the HTTP API.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserRegisterRequest is the body of POST /auth/register.
type UserRegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *UserResponse `json:"user"`
}

// UserUpdateRequest is the body of PUT /users/me. Absent fields are left unchanged.
type UserUpdateRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=100"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}
