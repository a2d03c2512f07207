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
)

// variantRepository implements the domain.VariantRepository interface.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{db: db}
}

// Create inserts a variant for an existing product.
func (repo *variantRepository) Create(ctx context.Context, variant *entity.Variant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("sku already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WithDetails("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create variant")
	}

	variant.ID = variantM.ID
	variant.CreatedAt = variantM.CreatedAt
	variant.UpdatedAt = variantM.UpdatedAt

	return nil
}

// FindByID retrieves a single variant.
func (repo *variantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Variant, error) {
	var variantM model.VariantModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by id")
	}

	return toVariantDomain(&variantM), nil
}

// Update saves name, SKU, price and stock.
func (repo *variantRepository) Update(ctx context.Context, variant *entity.Variant) error {
	variantM := fromVariantDomain(variant)

	result := repo.db.WithContext(ctx).Model(variantM).Updates(map[string]any{
		"name":  variantM.Name,
		"sku":   variantM.SKU,
		"price": variantM.Price,
		"stock": variantM.Stock,
	})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("sku already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update variant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// Delete removes a variant. Cart items holding it are removed by the foreign key cascade.
func (repo *variantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VariantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete variant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVariantDomain(data *model.VariantModel) *entity.Variant {
	if data == nil {
		return nil
	}

	return &entity.Variant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Name:      data.Name,
		SKU:       data.SKU,
		Price:     data.Price,
		Stock:     data.Stock,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromVariantDomain(data *entity.Variant) *model.VariantModel {
	if data == nil {
		return nil
	}

	return &model.VariantModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		Name:      data.Name,
		SKU:       data.SKU,
		Price:     data.Price,
		Stock:     data.Stock,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
