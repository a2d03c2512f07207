package handler

import (
	"net/http"

	"openshop/internal/delivery/http/middleware"
	"openshop/internal/delivery/http/response"
	"openshop/internal/dto"
	"openshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves the caller's profile and addresses.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	user, err := h.uc.GetCurrentUser(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

func (h *UserHandler) UpdateCurrentUser(c echo.Context) error {
	var req dto.UserUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.UpdateCurrentUser(c.Request().Context(), middleware.GetPrincipal(c), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

func (h *UserHandler) GetAddresses(c echo.Context) error {
	addresses, err := h.uc.GetAddresses(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// AddAddress requires the full address; updates may be partial.
func (h *UserHandler) AddAddress(c echo.Context) error {
	var req dto.AddressCreateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.uc.AddAddress(c.Request().Context(), middleware.GetPrincipal(c), req.ToAddressRequest())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address added")
}

func (h *UserHandler) UpdateUserAddress(c echo.Context) error {
	addressID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	address, err := h.uc.UpdateUserAddress(c.Request().Context(), middleware.GetPrincipal(c), addressID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated")
}

func (h *UserHandler) DeleteUserAddress(c echo.Context) error {
	addressID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUserAddress(c.Request().Context(), middleware.GetPrincipal(c), addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted")
}
