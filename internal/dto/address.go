package dto

import "github.com/google/uuid"

// AddressRequest is used to create or update an address.
// On update, empty fields keep their stored values.
type AddressRequest struct {
	AddressLine string `json:"addressLine" validate:"max=255"`
	City        string `json:"city" validate:"max=100"`
	State       string `json:"state" validate:"max=100"`
	PostalCode  string `json:"postalCode" validate:"max=20"`
	Country     string `json:"country" validate:"max=100"`
}

// AddressCreateRequest requires every field.
type AddressCreateRequest struct {
	AddressLine string `json:"addressLine" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"max=100"`
	PostalCode  string `json:"postalCode" validate:"required,max=20"`
	Country     string `json:"country" validate:"required,max=100"`
}

// ToAddressRequest drops the creation-only constraints.
func (r AddressCreateRequest) ToAddressRequest() *AddressRequest {
	req := AddressRequest(r)

	return &req
}

// AddressResponse is the public view of an address.
type AddressResponse struct {
	ID          uuid.UUID `json:"id"`
	AddressLine string    `json:"addressLine"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"postalCode"`
	Country     string    `json:"country"`
}
