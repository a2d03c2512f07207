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

// CartHandler serves the caller's cart.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Request().Context(), middleware.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req dto.CartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.uc.AddItem(c.Request().Context(), middleware.GetPrincipal(c), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cart, "Item added to cart")
}

func (h *CartHandler) UpdateItemQuantity(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CartItemQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.uc.UpdateItemQuantity(c.Request().Context(), middleware.GetPrincipal(c), itemID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart item updated")
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), middleware.GetPrincipal(c), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart item removed")
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context(), middleware.GetPrincipal(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
