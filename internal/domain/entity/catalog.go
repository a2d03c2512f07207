package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerType identifies which aggregate an Image is attached to.
type OwnerType string

const (
	// OwnerTypeCategory marks images attached to a category.
	OwnerTypeCategory OwnerType = "categories"
	// OwnerTypeProduct marks images attached to a product.
	OwnerTypeProduct OwnerType = "products"
)

// Image is a picture URL attached to a category or a product.
type Image struct {
	ID  uuid.UUID
	URL string
}

// Category groups products.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Images      []*Image
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is the catalog aggregate root; it owns its variants.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    *Category
	Images      []*Image
	Variants    []*Variant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Variant is a purchasable version of a product with its own price and stock.
type Variant struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	SKU       string
	Price     decimal.Decimal
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ImagesFromURLs builds unsaved images from a list of URLs.
func ImagesFromURLs(urls []string) []*Image {
	images := make([]*Image, 0, len(urls))
	for _, url := range urls {
		images = append(images, &Image{URL: url})
	}

	return images
}
