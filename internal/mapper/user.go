// Package mapper converts between domain entities and API DTOs.
// Every function is pure; nil input yields nil output.
package mapper

import (
	"openshop/internal/domain/entity"
	"openshop/internal/dto"
)

// ToUserEntity maps a registration request to a user. Password hashing,
// roles and cart are the caller's responsibility.
func ToUserEntity(req *dto.UserRegisterRequest) *entity.User {
	if req == nil {
		return nil
	}

	return &entity.User{
		Email: req.Email,
		Name:  req.Username,
	}
}

// ToUserResponse maps a user to its public view.
func ToUserResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		UserID:    user.ID,
		Username:  user.Name,
		Email:     user.Email,
		Roles:     user.RoleNames(),
		CreatedAt: user.CreatedAt,
	}
}

// ToAddressEntity maps an address request to an unowned address.
func ToAddressEntity(req *dto.AddressRequest) *entity.Address {
	if req == nil {
		return nil
	}

	return &entity.Address{
		AddressLine: req.AddressLine,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
	}
}

// ToAddressResponse maps an address to its public view.
func ToAddressResponse(address *entity.Address) *dto.AddressResponse {
	if address == nil {
		return nil
	}

	return &dto.AddressResponse{
		ID:          address.ID,
		AddressLine: address.AddressLine,
		City:        address.City,
		State:       address.State,
		PostalCode:  address.PostalCode,
		Country:     address.Country,
	}
}

// ToAddressResponseList keeps the input order and never returns nil.
func ToAddressResponseList(addresses []*entity.Address) []*dto.AddressResponse {
	out := make([]*dto.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, ToAddressResponse(address))
	}

	return out
}
