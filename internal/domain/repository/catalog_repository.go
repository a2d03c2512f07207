package repository

import (
	"context"

	"openshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("variant not found")
)

// CategoryRepository persists categories and their images.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	// Update saves the category columns and replaces its images.
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository persists products, their images and variants.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindAll lists products, restricted to one category when categoryID is not nil.
	FindAll(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error)
	// Update saves the product columns and replaces its images. Variants are managed separately.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// VariantRepository persists product variants.
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.Variant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error)
	Update(ctx context.Context, variant *entity.Variant) error
	Delete(ctx context.Context, id uuid.UUID) error
}
