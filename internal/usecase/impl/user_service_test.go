package impl

import (
	"context"
	"testing"

	"openshop/internal/domain/entity"
	domainerrors "openshop/internal/domain/errors"
	"openshop/internal/domain/repository"
	"openshop/internal/dto"
	mockRepo "openshop/internal/mocks/repository"
	"openshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	tx        *txRepos
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return userServiceFixtures{
		service:   NewUserService(txManager, userRepo, discardLogger()),
		txManager: txManager,
		userRepo:  userRepo,
		tx:        newTxRepos(t),
	}
}

func TestUserService_GetCurrentUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	resp, err := fx.service.GetCurrentUser(ctx, testPrincipal(user))

	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, user.Name, resp.Username)
	assert.Equal(t, user.Email, resp.Email)
}

func TestUserService_GetCurrentUser_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	principal := &entity.Principal{UserID: uuid.New(), Email: "gone@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, principal.Email).Return(nil, repository.ErrUserNotFound)

	resp, err := fx.service.GetCurrentUser(ctx, principal)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Equal(t, "User not found", err.Error())
}

func TestUserService_NilPrincipal(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	username := "nobody"

	calls := map[string]func() error{
		"GetCurrentUser": func() error {
			_, err := fx.service.GetCurrentUser(ctx, nil)
			return err
		},
		"UpdateCurrentUser": func() error {
			_, err := fx.service.UpdateCurrentUser(ctx, nil, &dto.UserUpdateRequest{Username: &username})
			return err
		},
		"GetAddresses": func() error {
			_, err := fx.service.GetAddresses(ctx, nil)
			return err
		},
		"AddAddress": func() error {
			_, err := fx.service.AddAddress(ctx, nil, &dto.AddressRequest{City: "Taipei"})
			return err
		},
		"UpdateUserAddress": func() error {
			_, err := fx.service.UpdateUserAddress(ctx, nil, uuid.New(), &dto.AddressRequest{})
			return err
		},
		"DeleteUserAddress": func() error {
			return fx.service.DeleteUserAddress(ctx, nil, uuid.New())
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()

			assert.True(t, errors.Is(err, domainerrors.ErrIllegalState))
			assert.Equal(t, "Principal cannot be null", err.Error())
		})
	}

	fx.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_UpdateCurrentUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()
	username := "renamed"

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.user.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Name == username })).
		Return(nil).
		Once()

	resp, err := fx.service.UpdateCurrentUser(ctx, testPrincipal(user), &dto.UserUpdateRequest{Username: &username})

	require.NoError(t, err)
	assert.Equal(t, username, resp.Username)
	assert.Equal(t, user.Email, resp.Email)
	fx.tx.user.AssertNumberOfCalls(t, "Update", 1)
}

func TestUserService_UpdateCurrentUser_AbsentFieldKeepsName(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.user.EXPECT().Update(ctx, user).Return(nil).Once()

	resp, err := fx.service.UpdateCurrentUser(ctx, testPrincipal(user), &dto.UserUpdateRequest{})

	require.NoError(t, err)
	assert.Equal(t, "jane", resp.Username)
}

func TestUserService_GetAddresses_EmptyIsNotNil(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()
	user.Addresses = nil

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	resp, err := fx.service.GetAddresses(ctx, testPrincipal(user))

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestUserService_GetAddresses_KeepsOrder(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()
	first := &entity.Address{ID: uuid.New(), City: "Taipei"}
	second := &entity.Address{ID: uuid.New(), City: "Kaohsiung"}
	user.Addresses = []*entity.Address{first, second}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	resp, err := fx.service.GetAddresses(ctx, testPrincipal(user))

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, first.ID, resp[0].ID)
	assert.Equal(t, second.ID, resp[1].ID)
}

func TestUserService_AddAddress_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()
	req := &dto.AddressRequest{
		AddressLine: "1 Main St",
		City:        "Taipei",
		PostalCode:  "100",
		Country:     "TW",
	}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.address.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Address) bool { return a.UserID == user.ID })).
		Run(func(ctx context.Context, address *entity.Address) {
			address.ID = uuid.New()
		}).
		Return(nil).
		Once()

	resp, err := fx.service.AddAddress(ctx, testPrincipal(user), req)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, req.AddressLine, resp.AddressLine)
	assert.Equal(t, req.City, resp.City)
	assert.Equal(t, req.PostalCode, resp.PostalCode)
	assert.Equal(t, req.Country, resp.Country)
	require.Len(t, user.Addresses, 1)
	assert.Equal(t, resp.ID, user.Addresses[0].ID)
}

func TestUserService_UpdateUserAddress_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()
	address := &entity.Address{ID: uuid.New(), UserID: user.ID, AddressLine: "old", City: "Taipei", Country: "TW"}
	user.Addresses = []*entity.Address{address}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.address.EXPECT().Update(ctx, address).Return(nil).Once()

	resp, err := fx.service.UpdateUserAddress(ctx, testPrincipal(user), address.ID, &dto.AddressRequest{AddressLine: "new"})

	require.NoError(t, err)
	assert.Equal(t, "new", resp.AddressLine)
	assert.Equal(t, "Taipei", resp.City)
}

func TestUserService_UpdateUserAddress_NotOwned(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	resp, err := fx.service.UpdateUserAddress(ctx, testPrincipal(user), uuid.New(), &dto.AddressRequest{City: "x"})

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
	fx.tx.address.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUserAddress_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()
	keep := &entity.Address{ID: uuid.New(), UserID: user.ID}
	drop := &entity.Address{ID: uuid.New(), UserID: user.ID}
	user.Addresses = []*entity.Address{keep, drop}

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tx.user.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			_, stillThere := u.FindAddress(drop.ID)
			return !stillThere
		})).
		Return(nil).
		Once()
	fx.tx.address.EXPECT().Delete(ctx, drop.ID).Return(nil).Once()

	err := fx.service.DeleteUserAddress(ctx, testPrincipal(user), drop.ID)

	require.NoError(t, err)
	require.Len(t, user.Addresses, 1)
	assert.Equal(t, keep.ID, user.Addresses[0].ID)
}

func TestUserService_DeleteUserAddress_NotOwned(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	expectTx(fx.txManager, ctx, fx.tx)
	fx.tx.user.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	err := fx.service.DeleteUserAddress(ctx, testPrincipal(user), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
	fx.tx.user.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.tx.address.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
