package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRequest is used to create or update a category.
type CategoryRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=1000"`
	ImageURLs   []string `json:"imageUrls" validate:"omitempty,dive,url"`
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURLs   []string  `json:"imageUrls"`
}

// ProductRequest is used to create or update a product.
type ProductRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=4000"`
	CategoryID  uuid.UUID `json:"categoryId" validate:"required"`
	ImageURLs   []string  `json:"imageUrls" validate:"omitempty,dive,url"`
}

// ProductResponse is the public view of a product with its variants.
type ProductResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	CategoryID   uuid.UUID          `json:"categoryId"`
	CategoryName string             `json:"categoryName"`
	ImageURLs    []string           `json:"imageUrls"`
	Variants     []*VariantResponse `json:"variants"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// VariantRequest is used to create or update a variant.
type VariantRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	SKU           string          `json:"sku" validate:"required,max=64"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
}

// VariantResponse is the public view of a variant.
type VariantResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
}
