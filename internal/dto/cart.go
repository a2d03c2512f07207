package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItemRequest is the body of POST /cart/items.
type CartItemRequest struct {
	VariantID uuid.UUID `json:"variantId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// CartItemQuantityRequest is the body of PUT /cart/items/:id.
type CartItemQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse is one line of a cart.
type CartItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	VariantID   uuid.UUID       `json:"variantId"`
	VariantName string          `json:"variantName"`
	SKU         string          `json:"sku"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CartResponse is the public view of a cart; Price is the sum of item prices.
type CartResponse struct {
	CartItems []*CartItemResponse `json:"cartItems"`
	Price     decimal.Decimal     `json:"price"`
}
