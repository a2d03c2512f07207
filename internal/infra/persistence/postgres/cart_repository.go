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

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUserID loads the user's cart with items ordered by insertion.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("Items.Variant").
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user id")
	}

	return toCartDomain(&cartM), nil
}

// SaveItem inserts the item when it has no ID yet, otherwise updates quantity and price.
func (repo *cartRepository) SaveItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if item.ID == uuid.Nil {
		if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(itemM).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrVariantNotFound.WithDetails("invalid cart or variant reference")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
		}

		item.ID = itemM.ID
		item.CreatedAt = itemM.CreatedAt
		item.UpdatedAt = itemM.UpdatedAt

		return nil
	}

	result := repo.db.WithContext(ctx).Model(itemM).Omit(clause.Associations).Updates(map[string]any{
		"quantity": itemM.Quantity,
		"price":    itemM.Price,
	})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes a single cart item.
func (repo *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", itemID).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearItems removes every item of the cart. An already empty cart is not an error.
func (repo *cartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	cart := &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     make([]*entity.CartItem, 0, len(data.Items)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for _, itemM := range data.Items {
		cart.Items = append(cart.Items, toCartItemDomain(itemM))
	}

	return cart
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	item := &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Variant != nil {
		item.Variant = toVariantDomain(data.Variant)
	} else {
		item.Variant = &entity.Variant{ID: data.VariantID}
	}

	return item
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	itemM := &model.CartItemModel{
		ID:        data.ID,
		CartID:    data.CartID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Variant != nil {
		itemM.VariantID = data.Variant.ID
	}

	return itemM
}
