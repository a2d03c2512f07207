package postgres

import (
	"context"

	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) withAggregate(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", orderImages).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		})
}

// Create inserts the product with its images. Variants are added through the VariantRepository.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category", "Variants").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WithDetails("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	copyImageIDs(product.Images, productM.Images)

	return nil
}

// FindByID retrieves a product with its category, images and variants.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.withAggregate(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindAll lists products ordered by creation, optionally within one category.
func (repo *productRepository) FindAll(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error) {
	query := repo.withAggregate(ctx).Order("created_at ASC, id ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var productMs []*model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update saves the product columns and replaces its images.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(productM).Omit(clause.Associations).Updates(map[string]any{
		"name":        productM.Name,
		"description": productM.Description,
		"category_id": productM.CategoryID,
	})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WithDetails("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return replaceImages(ctx, repo.db, product.ID, model.OwnerTypeProduct, product.Images)
}

// Delete removes a product with its variants and images. Cart items holding
// those variants go with them through the foreign key cascade.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("product_id = ?", id).Delete(&model.VariantModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product variants")
	}

	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return deleteImages(ctx, repo.db, id, model.OwnerTypeProduct)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Images:      toImagesDomain(data.Images),
		Variants:    make([]*entity.Variant, 0, len(data.Variants)),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Category != nil {
		product.Category = toCategoryDomain(data.Category)
	} else {
		product.Category = &entity.Category{ID: data.CategoryID}
	}
	for _, variantM := range data.Variants {
		product.Variants = append(product.Variants, toVariantDomain(variantM))
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Images:      fromImagesDomain(data.Images),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Category != nil {
		productM.CategoryID = data.Category.ID
	}

	return productM
}
