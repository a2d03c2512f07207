package impl

import (
	"context"
	"testing"

	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/domain/service"
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

type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	cartRepo  *mockRepo.MockCartRepository
	publisher *mockSvc.MockEventPublisher
	tx        *txRepos
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return cartServiceFixtures{
		service:   NewCartService(txManager, userRepo, cartRepo, publisher, discardLogger()),
		txManager: txManager,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		publisher: publisher,
		tx:        newTxRepos(t),
	}
}

func testVariant(stock int, price string) *entity.Variant {
	return &entity.Variant{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		Name:      "Blue / M",
		SKU:       "TEE-BLU-M",
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
	}
}

func TestCartService_GetCart_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()
	variant := testVariant(10, "12.50")
	cart := &entity.Cart{
		ID:     user.Cart.ID,
		UserID: user.ID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), Variant: variant, Quantity: 2, Price: decimal.RequireFromString("25.00")},
		},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, user.ID).Return(cart, nil)

	resp, err := fx.service.GetCart(ctx, testPrincipal(user))

	require.NoError(t, err)
	require.Len(t, resp.CartItems, 1)
	assert.Equal(t, variant.ID, resp.CartItems[0].VariantID)
	assert.True(t, decimal.RequireFromString("25").Equal(resp.Price))
}

func TestCartService_GetCart_MissingCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.cartRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrCartNotFound)

	resp, err := fx.service.GetCart(ctx, testPrincipal(user))

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrResourceNotFound))
}

func TestCartService_NilPrincipal(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	_, err := fx.service.GetCart(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalState))

	_, err = fx.service.AddItem(ctx, nil, &dto.CartItemRequest{VariantID: uuid.New(), Quantity: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalState))

	err = fx.service.ClearCart(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrIllegalState))

	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()
	variant := testVariant(5, "9.99")
	cart := &entity.Cart{ID: user.Cart.ID, UserID: user.ID, Items: []*entity.CartItem{}}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.cart.EXPECT().FindByUserID(ctx, user.ID).Return(cart, nil)
	fx.tx.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	fx.tx.cart.EXPECT().
		SaveItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ID == uuid.Nil && item.CartID == cart.ID && item.Quantity == 3
		})).
		Run(func(ctx context.Context, item *entity.CartItem) {
			item.ID = uuid.New()
		}).
		Return(nil).
		Once()
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventCartItemAdded && event.AggregateID == cart.ID.String()
		})).
		Return(nil)

	resp, err := fx.service.AddItem(ctx, testPrincipal(user), &dto.CartItemRequest{VariantID: variant.ID, Quantity: 3})

	require.NoError(t, err)
	require.Len(t, resp.CartItems, 1)
	assert.Equal(t, 3, resp.CartItems[0].Quantity)
	assert.True(t, decimal.RequireFromString("29.97").Equal(resp.CartItems[0].Price))
	assert.True(t, decimal.RequireFromString("29.97").Equal(resp.Price))
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()
	variant := testVariant(5, "10")
	existing := &entity.CartItem{ID: uuid.New(), Variant: variant, Quantity: 2, Price: decimal.NewFromInt(20)}
	cart := &entity.Cart{ID: user.Cart.ID, UserID: user.ID, Items: []*entity.CartItem{existing}}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.cart.EXPECT().FindByUserID(ctx, user.ID).Return(cart, nil)
	fx.tx.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	fx.tx.cart.EXPECT().SaveItem(ctx, existing).Return(nil).Once()
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	resp, err := fx.service.AddItem(ctx, testPrincipal(user), &dto.CartItemRequest{VariantID: variant.ID, Quantity: 3})

	require.NoError(t, err)
	require.Len(t, resp.CartItems, 1)
	assert.Equal(t, 5, resp.CartItems[0].Quantity)
	assert.True(t, decimal.NewFromInt(50).Equal(resp.Price))
}

func TestCartService_AddItem_InsufficientStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()
	variant := testVariant(4, "10")
	existing := &entity.CartItem{ID: uuid.New(), Variant: variant, Quantity: 3}
	cart := &entity.Cart{ID: user.Cart.ID, UserID: user.ID, Items: []*entity.CartItem{existing}}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.cart.EXPECT().FindByUserID(ctx, user.ID).Return(cart, nil)
	fx.tx.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)

	resp, err := fx.service.AddItem(ctx, testPrincipal(user), &dto.CartItemRequest{VariantID: variant.ID, Quantity: 2})

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	assert.Equal(t, 3, existing.Quantity)
	fx.tx.cart.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_UnknownVariant(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()
	variantID := uuid.New()

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.cart.EXPECT().FindByUserID(ctx, user.ID).Return(&entity.Cart{ID: user.Cart.ID}, nil)
	fx.tx.variant.EXPECT().FindByID(ctx, variantID).Return(nil, repository.ErrVariantNotFound)

	resp, err := fx.service.AddItem(ctx, testPrincipal(user), &dto.CartItemRequest{VariantID: variantID, Quantity: 1})

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
}

func TestCartService_UpdateItemQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()
	variant := testVariant(10, "3.50")
	item := &entity.CartItem{ID: uuid.New(), Variant: variant, Quantity: 1, Price: variant.Price}
	cart := &entity.Cart{ID: user.Cart.ID, UserID: user.ID, Items: []*entity.CartItem{item}}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.cart.EXPECT().FindByUserID(ctx, user.ID).Return(cart, nil)
	fx.tx.variant.EXPECT().FindByID(ctx, variant.ID).Return(variant, nil)
	fx.tx.cart.EXPECT().SaveItem(ctx, item).Return(nil).Once()

	resp, err := fx.service.UpdateItemQuantity(ctx, testPrincipal(user), item.ID, 4)

	require.NoError(t, err)
	assert.Equal(t, 4, resp.CartItems[0].Quantity)
	assert.True(t, decimal.RequireFromString("14").Equal(resp.Price))
}

func TestCartService_UpdateItemQuantity_ForeignItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.cart.EXPECT().FindByUserID(ctx, user.ID).Return(&entity.Cart{ID: user.Cart.ID}, nil)

	resp, err := fx.service.UpdateItemQuantity(ctx, testPrincipal(user), uuid.New(), 2)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_UpdateItemQuantity_RejectsZero(t *testing.T) {
	fx := createTestCartService(t)
	user := testUser()

	resp, err := fx.service.UpdateItemQuantity(context.Background(), testPrincipal(user), uuid.New(), 0)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()
	keep := &entity.CartItem{ID: uuid.New(), Variant: testVariant(5, "1"), Quantity: 1, Price: decimal.NewFromInt(1)}
	drop := &entity.CartItem{ID: uuid.New(), Variant: testVariant(5, "2"), Quantity: 1, Price: decimal.NewFromInt(2)}
	cart := &entity.Cart{ID: user.Cart.ID, UserID: user.ID, Items: []*entity.CartItem{keep, drop}}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.cart.EXPECT().FindByUserID(ctx, user.ID).Return(cart, nil)
	fx.tx.cart.EXPECT().DeleteItem(ctx, drop.ID).Return(nil).Once()

	resp, err := fx.service.RemoveItem(ctx, testPrincipal(user), drop.ID)

	require.NoError(t, err)
	require.Len(t, resp.CartItems, 1)
	assert.Equal(t, keep.ID, resp.CartItems[0].ID)
	assert.True(t, decimal.NewFromInt(1).Equal(resp.Price))
}

func TestCartService_ClearCart_Success(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	user := testUser()
	cart := &entity.Cart{ID: user.Cart.ID, UserID: user.ID, Items: []*entity.CartItem{{ID: uuid.New()}}}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.cart.EXPECT().FindByUserID(ctx, user.ID).Return(cart, nil)
	fx.tx.cart.EXPECT().ClearItems(ctx, cart.ID).Return(nil).Once()
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventCartCleared && event.Payload["itemsRemoved"] == 1
		})).
		Return(nil)

	err := fx.service.ClearCart(ctx, testPrincipal(user))

	require.NoError(t, err)
}
