package postgres

import (
	"context"
	"testing"

	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestCategory(t *testing.T, db *gorm.DB, name string) *entity.Category {
	t.Helper()

	category := &entity.Category{
		Name:        name,
		Description: "All things " + name,
		Images:      entity.ImagesFromURLs([]string{"https://cdn.example.com/" + name + ".png"}),
	}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))

	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, category *entity.Category, sku string, price string, stock int) (*entity.Product, *entity.Variant) {
	t.Helper()
	ctx := context.Background()

	product := &entity.Product{
		Name:        "Shirt " + sku,
		Description: "Cotton shirt",
		Category:    &entity.Category{ID: category.ID},
		Images:      entity.ImagesFromURLs([]string{"https://cdn.example.com/" + sku + ".png"}),
	}
	require.NoError(t, NewProductRepository(db).Create(ctx, product))

	variant := &entity.Variant{
		ProductID: product.ID,
		Name:      "M",
		SKU:       sku,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
	}
	require.NoError(t, NewVariantRepository(db).Create(ctx, variant))

	return product, variant
}

func TestCategoryRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	category := createTestCategory(t, db, "apparel")
	require.Len(t, category.Images, 1)
	assert.NotEqual(t, uuid.Nil, category.Images[0].ID)

	found, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "apparel", found.Name)
	require.Len(t, found.Images, 1)
	assert.Equal(t, "https://cdn.example.com/apparel.png", found.Images[0].URL)

	found.Description = "Clothes"
	found.Images = entity.ImagesFromURLs([]string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"})
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clothes", updated.Description)
	assert.Len(t, updated.Images, 2)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, category.ID))
	_, err = repo.FindByID(ctx, category.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	var images int64
	require.NoError(t, db.Table("images").Count(&images).Error)
	assert.Zero(t, images)
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	db := newTestDB(t)

	createTestCategory(t, db, "toys")
	err := NewCategoryRepository(db).Create(context.Background(), &entity.Category{Name: "toys"})
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestCategoryRepository_DeleteWithProducts(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "books")
	createTestProduct(t, db, category, "BK-1", "12.00", 3)

	err := NewCategoryRepository(db).Delete(context.Background(), category.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestProductRepository_FindWithVariantsAndCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	category := createTestCategory(t, db, "apparel")
	product, variant := createTestProduct(t, db, category, "SH-M", "19.99", 5)

	found, err := NewProductRepository(db).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "apparel", found.Category.Name)
	require.Len(t, found.Variants, 1)
	assert.Equal(t, variant.ID, found.Variants[0].ID)
	assert.True(t, decimal.RequireFromString("19.99").Equal(found.Variants[0].Price))
	require.Len(t, found.Images, 1)
	assert.Equal(t, "https://cdn.example.com/SH-M.png", found.Images[0].URL)
}

func TestProductRepository_FindAllByCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	apparel := createTestCategory(t, db, "apparel")
	books := createTestCategory(t, db, "books")
	createTestProduct(t, db, apparel, "SH-1", "10.00", 1)
	createTestProduct(t, db, books, "BK-1", "12.00", 1)

	repo := NewProductRepository(db)
	all, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyBooks, err := repo.FindAll(ctx, &books.ID)
	require.NoError(t, err)
	require.Len(t, onlyBooks, 1)
	assert.Equal(t, books.ID, onlyBooks[0].Category.ID)
}

func TestProductRepository_UnknownCategory(t *testing.T) {
	db := newTestDB(t)

	err := NewProductRepository(db).Create(context.Background(), &entity.Product{
		Name:     "Orphan",
		Category: &entity.Category{ID: uuid.New()},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	category := createTestCategory(t, db, "apparel")
	product, variant := createTestProduct(t, db, category, "SH-X", "9.50", 2)
	repo := NewProductRepository(db)

	product.Name = "Renamed"
	product.Images = nil
	require.NoError(t, repo.Update(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
	assert.Empty(t, found.Images)

	require.NoError(t, repo.Delete(ctx, product.ID))
	_, err = NewVariantRepository(db).FindByID(ctx, variant.ID)
	assert.ErrorIs(t, err, repository.ErrVariantNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, product.ID), repository.ErrProductNotFound)
}

func TestVariantRepository_DuplicateSKU(t *testing.T) {
	db := newTestDB(t)
	category := createTestCategory(t, db, "apparel")
	product, _ := createTestProduct(t, db, category, "DUP-1", "5.00", 1)

	err := NewVariantRepository(db).Create(context.Background(), &entity.Variant{
		ProductID: product.ID,
		Name:      "L",
		SKU:       "DUP-1",
		Price:     decimal.NewFromInt(6),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestVariantRepository_Update(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	category := createTestCategory(t, db, "apparel")
	_, variant := createTestProduct(t, db, category, "UPD-1", "5.00", 1)
	repo := NewVariantRepository(db)

	variant.Stock = 42
	variant.Price = decimal.RequireFromString("7.25")
	require.NoError(t, repo.Update(ctx, variant))

	found, err := repo.FindByID(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, found.Stock)
	assert.True(t, decimal.RequireFromString("7.25").Equal(found.Price))

	require.NoError(t, repo.Delete(ctx, variant.ID))
	assert.ErrorIs(t, repo.Delete(ctx, variant.ID), repository.ErrVariantNotFound)
}
