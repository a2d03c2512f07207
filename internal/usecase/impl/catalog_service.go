package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "openshop/internal/delivery/context"
	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/domain/service"
	"openshop/internal/dto"
	"openshop/internal/mapper"
	"openshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catalogService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	exporter     service.ProductExporter
	logger       *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	txManager repository.TransactionManager,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	exporter service.ProductExporter,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    txManager,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		exporter:     exporter,
		logger:       logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// catalogMiss translates repository misses into their application errors.
func catalogMiss(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		return domainerrors.ErrCategoryNotFound
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrVariantNotFound):
		return domainerrors.ErrVariantNotFound
	default:
		return errors.Wrap(err, msg)
	}
}

// --- Categories ---

func (srv *catalogService) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := mapper.ToCategoryEntity(req)
	category.Images = entity.ImagesFromURLs(req.ImageURLs)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CategoryRepo().Create(ctx, category); err != nil {
			return errors.Wrap(err, "failed to create category")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create category transaction")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID))

	return mapper.ToCategoryResponse(category), nil
}

func (srv *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, catalogMiss(err, "failed to find category")
	}

	return mapper.ToCategoryResponse(category), nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return mapper.ToCategoryResponseList(categories), nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, err := categoryRepo.FindByID(ctx, id)
		if err != nil {
			return catalogMiss(err, "failed to find category")
		}

		category.Name = req.Name
		category.Description = req.Description
		category.Images = entity.ImagesFromURLs(req.ImageURLs)

		if err := categoryRepo.Update(ctx, category); err != nil {
			return catalogMiss(err, "failed to update category")
		}

		updated = category

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update category transaction")
	}

	return mapper.ToCategoryResponse(updated), nil
}

func (srv *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CategoryRepo().Delete(ctx, id); err != nil {
			return catalogMiss(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete category transaction")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}

// --- Products ---

func (srv *catalogService) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	product := mapper.ToProductEntity(req)
	product.Images = entity.ImagesFromURLs(req.ImageURLs)
	product.Variants = []*entity.Variant{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, err := repoFactory.CategoryRepo().FindByID(ctx, req.CategoryID)
		if err != nil {
			return catalogMiss(err, "failed to find category")
		}
		product.Category = category

		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create product transaction")
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID),
		slog.Any("categoryID", product.Category.ID),
	)

	return mapper.ToProductResponse(product), nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, catalogMiss(err, "failed to find product")
	}

	return mapper.ToProductResponse(product), nil
}

func (srv *catalogService) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*dto.ProductResponse, error) {
	if categoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *categoryID); err != nil {
			return nil, catalogMiss(err, "failed to find category")
		}
	}

	products, err := srv.productRepo.FindAll(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return mapper.ToProductResponseList(products), nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return catalogMiss(err, "failed to find product")
		}

		if product.Category == nil || product.Category.ID != req.CategoryID {
			category, err := repoFactory.CategoryRepo().FindByID(ctx, req.CategoryID)
			if err != nil {
				return catalogMiss(err, "failed to find category")
			}
			product.Category = category
		}

		product.Name = req.Name
		product.Description = req.Description
		product.Images = entity.ImagesFromURLs(req.ImageURLs)

		if err := productRepo.Update(ctx, product); err != nil {
			return catalogMiss(err, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update product transaction")
	}

	return mapper.ToProductResponse(updated), nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Delete(ctx, id); err != nil {
			return catalogMiss(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete product transaction")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// --- Variants ---

func validateVariant(req *dto.VariantRequest) error {
	if !req.Price.IsPositive() {
		return domainerrors.ErrValidationFailed.WithDetails("price must be greater than zero")
	}
	if req.StockQuantity < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock quantity must not be negative")
	}

	return nil
}

// findOwnedVariant loads a variant and checks it belongs to the product.
func findOwnedVariant(ctx context.Context, variantRepo repository.VariantRepository, productID, variantID uuid.UUID) (*entity.Variant, error) {
	variant, err := variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return nil, catalogMiss(err, "failed to find variant")
	}
	if variant.ProductID != productID {
		return nil, domainerrors.ErrVariantNotFound
	}

	return variant, nil
}

func (srv *catalogService) AddVariant(ctx context.Context, productID uuid.UUID, req *dto.VariantRequest) (*dto.VariantResponse, error) {
	if err := validateVariant(req); err != nil {
		return nil, err
	}

	variant := mapper.ToVariantEntity(req)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
			return catalogMiss(err, "failed to find product")
		}

		variant.ProductID = productID
		if err := repoFactory.VariantRepo().Create(ctx, variant); err != nil {
			return errors.Wrap(err, "failed to create variant")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add variant transaction")
	}

	srv.log(ctx).Info("Variant added",
		slog.Any("productID", productID),
		slog.String("sku", variant.SKU),
	)

	return mapper.ToVariantResponse(variant), nil
}

func (srv *catalogService) UpdateVariant(ctx context.Context, productID, variantID uuid.UUID, req *dto.VariantRequest) (*dto.VariantResponse, error) {
	if err := validateVariant(req); err != nil {
		return nil, err
	}

	var updated *entity.Variant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		variantRepo := repoFactory.VariantRepo()

		variant, err := findOwnedVariant(ctx, variantRepo, productID, variantID)
		if err != nil {
			return err
		}

		variant.Name = req.Name
		variant.SKU = req.SKU
		variant.Price = req.Price
		variant.Stock = req.StockQuantity

		if err := variantRepo.Update(ctx, variant); err != nil {
			return catalogMiss(err, "failed to update variant")
		}

		updated = variant

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update variant transaction")
	}

	return mapper.ToVariantResponse(updated), nil
}

func (srv *catalogService) DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		variantRepo := repoFactory.VariantRepo()

		if _, err := findOwnedVariant(ctx, variantRepo, productID, variantID); err != nil {
			return err
		}

		if err := variantRepo.Delete(ctx, variantID); err != nil {
			return catalogMiss(err, "failed to delete variant")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete variant transaction")
	}

	return nil
}

// ExportProducts writes every product with its variants through the configured exporter.
func (srv *catalogService) ExportProducts(ctx context.Context, w io.Writer) error {
	products, err := srv.productRepo.FindAll(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to load products for export")
	}

	if err := srv.exporter.Export(w, products); err != nil {
		return errors.Wrap(err, "failed to export products")
	}

	srv.log(ctx).Info("Products exported", slog.Int("count", len(products)))

	return nil
}
