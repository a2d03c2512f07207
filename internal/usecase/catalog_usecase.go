package usecase

import (
	"context"
	"io"

	"openshop/internal/dto"

	"github.com/google/uuid"
)

// CatalogUsecase manages categories, products and their variants.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.CategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	// ListProducts returns every product, or only those of one category when categoryID is set.
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *dto.ProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	AddVariant(ctx context.Context, productID uuid.UUID, req *dto.VariantRequest) (*dto.VariantResponse, error)
	UpdateVariant(ctx context.Context, productID, variantID uuid.UUID, req *dto.VariantRequest) (*dto.VariantResponse, error)
	DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error

	// ExportProducts writes the catalog as a spreadsheet.
	ExportProducts(ctx context.Context, w io.Writer) error
}
