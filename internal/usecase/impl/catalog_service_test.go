package impl

import (
	"bytes"
	"context"
	"testing"

	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/dto"
	mockRepo "openshop/internal/mocks/repository"
	mockSvc "openshop/internal/mocks/service"
	"openshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	exporter     *mockSvc.MockProductExporter
	tx           *txRepos
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	exporter := mockSvc.NewMockProductExporter(t)

	return catalogServiceFixtures{
		service:      NewCatalogService(txManager, categoryRepo, productRepo, exporter, discardLogger()),
		txManager:    txManager,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		exporter:     exporter,
		tx:           newTxRepos(t),
	}
}

func TestCatalogService_CreateCategory_AttachesImages(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	req := &dto.CategoryRequest{
		Name:      "Shirts",
		ImageURLs: []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"},
	}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.category.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Category) bool { return len(c.Images) == 2 })).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = uuid.New()
		}).
		Return(nil)

	resp, err := fx.service.CreateCategory(ctx, req)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, req.ImageURLs, resp.ImageURLs)
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCategoryNotFound)

	resp, err := fx.service.GetCategory(ctx, id)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCatalogService_ListCategories_EmptyIsNotNil(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindAll(ctx).Return(nil, nil)

	resp, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestCatalogService_UpdateCategory_ReplacesImages(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	category := &entity.Category{
		ID:     uuid.New(),
		Name:   "Old",
		Images: []*entity.Image{{ID: uuid.New(), URL: "https://cdn.example.com/old.png"}},
	}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.category.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.tx.category.EXPECT().Update(ctx, category).Return(nil)

	resp, err := fx.service.UpdateCategory(ctx, category.ID, &dto.CategoryRequest{
		Name:      "New",
		ImageURLs: []string{"https://cdn.example.com/new.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	assert.Equal(t, []string{"https://cdn.example.com/new.png"}, resp.ImageURLs)
}

func TestCatalogService_DeleteCategory_InUse(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.category.EXPECT().Delete(ctx, id).Return(domainerrors.ErrConflict.WithDetails("category still has products"))

	err := fx.service.DeleteCategory(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Shirts"}
	req := &dto.ProductRequest{
		Name:       "Tee",
		CategoryID: category.ID,
		ImageURLs:  []string{"https://cdn.example.com/tee.png"},
	}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.category.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.tx.product.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	resp, err := fx.service.CreateProduct(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, category.ID, resp.CategoryID)
	assert.Equal(t, "Shirts", resp.CategoryName)
	assert.Equal(t, req.ImageURLs, resp.ImageURLs)
	assert.NotNil(t, resp.Variants)
}

func TestCatalogService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	req := &dto.ProductRequest{Name: "Tee", CategoryID: uuid.New()}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.category.EXPECT().FindByID(ctx, req.CategoryID).Return(nil, repository.ErrCategoryNotFound)

	resp, err := fx.service.CreateProduct(ctx, req)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	fx.tx.product.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogService_ListProducts_ByCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Shirts"}
	products := []*entity.Product{{ID: uuid.New(), Name: "Tee", Category: category}}

	fx.categoryRepo.EXPECT().FindByID(ctx, category.ID).Return(category, nil)
	fx.productRepo.EXPECT().FindAll(ctx, &category.ID).Return(products, nil)

	resp, err := fx.service.ListProducts(ctx, &category.ID)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Tee", resp[0].Name)
}

func TestCatalogService_ListProducts_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.categoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCategoryNotFound)

	resp, err := fx.service.ListProducts(ctx, &id)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	resp, err := fx.service.GetProduct(ctx, id)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_UpdateProduct_MovesCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	oldCategory := &entity.Category{ID: uuid.New(), Name: "Old"}
	newCategory := &entity.Category{ID: uuid.New(), Name: "New"}
	product := &entity.Product{ID: uuid.New(), Name: "Tee", Category: oldCategory}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.product.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.tx.category.EXPECT().FindByID(ctx, newCategory.ID).Return(newCategory, nil)
	fx.tx.product.EXPECT().Update(ctx, product).Return(nil)

	resp, err := fx.service.UpdateProduct(ctx, product.ID, &dto.ProductRequest{Name: "Tee v2", CategoryID: newCategory.ID})

	require.NoError(t, err)
	assert.Equal(t, "Tee v2", resp.Name)
	assert.Equal(t, "New", resp.CategoryName)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.product.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_AddVariant_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()
	req := &dto.VariantRequest{Name: "Red / L", SKU: "TEE-RED-L", Price: decimal.RequireFromString("19.90"), StockQuantity: 7}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.product.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.tx.variant.EXPECT().
		Create(ctx, mock.MatchedBy(func(v *entity.Variant) bool { return v.ProductID == productID && v.Stock == 7 })).
		Return(nil)

	resp, err := fx.service.AddVariant(ctx, productID, req)

	require.NoError(t, err)
	assert.Equal(t, req.SKU, resp.SKU)
	assert.Equal(t, 7, resp.StockQuantity)
}

func TestCatalogService_AddVariant_RejectsNonPositivePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	resp, err := fx.service.AddVariant(context.Background(), uuid.New(), &dto.VariantRequest{Name: "x", SKU: "x", Price: decimal.Zero})

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCatalogService_AddVariant_DuplicateSKU(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.product.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.tx.variant.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrConflict.WithDetails("sku already exists"))

	_, err := fx.service.AddVariant(ctx, productID, &dto.VariantRequest{Name: "x", SKU: "DUP", Price: decimal.NewFromInt(1)})

	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestCatalogService_UpdateVariant_WrongProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	variant := testVariant(1, "5")

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)

	_, err := fx.service.UpdateVariant(ctx, uuid.New(), variant.ID, &dto.VariantRequest{Name: "x", SKU: "x", Price: decimal.NewFromInt(1)})

	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
	fx.tx.variant.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_DeleteVariant_Success(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	variant := testVariant(1, "5")

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	fx.tx.variant.EXPECT().Delete(ctx, variant.ID).Return(nil).Once()

	err := fx.service.DeleteVariant(ctx, variant.ProductID, variant.ID)

	require.NoError(t, err)
}

func TestCatalogService_ExportProducts(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	products := []*entity.Product{{ID: uuid.New(), Name: "Tee"}}
	var buf bytes.Buffer

	fx.productRepo.EXPECT().FindAll(ctx, (*uuid.UUID)(nil)).Return(products, nil)
	fx.exporter.EXPECT().Export(&buf, products).Return(nil)

	err := fx.service.ExportProducts(ctx, &buf)

	require.NoError(t, err)
}
