package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"openshop/internal/domain/entity"
	"openshop/internal/domain/repository"
	mockRepo "openshop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txRepos are the repositories handed out by a mocked transaction.
type txRepos struct {
	factory  *mockRepo.MockRepositoryFactory
	user     *mockRepo.MockUserRepository
	role     *mockRepo.MockRoleRepository
	address  *mockRepo.MockAddressRepository
	cart     *mockRepo.MockCartRepository
	category *mockRepo.MockCategoryRepository
	product  *mockRepo.MockProductRepository
	variant  *mockRepo.MockVariantRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory:  mockRepo.NewMockRepositoryFactory(t),
		user:     mockRepo.NewMockUserRepository(t),
		role:     mockRepo.NewMockRoleRepository(t),
		address:  mockRepo.NewMockAddressRepository(t),
		cart:     mockRepo.NewMockCartRepository(t),
		category: mockRepo.NewMockCategoryRepository(t),
		product:  mockRepo.NewMockProductRepository(t),
		variant:  mockRepo.NewMockVariantRepository(t),
	}

	repos.factory.EXPECT().UserRepo().Return(repos.user).Maybe()
	repos.factory.EXPECT().RoleRepo().Return(repos.role).Maybe()
	repos.factory.EXPECT().AddressRepo().Return(repos.address).Maybe()
	repos.factory.EXPECT().CartRepo().Return(repos.cart).Maybe()
	repos.factory.EXPECT().CategoryRepo().Return(repos.category).Maybe()
	repos.factory.EXPECT().ProductRepo().Return(repos.product).Maybe()
	repos.factory.EXPECT().VariantRepo().Return(repos.variant).Maybe()

	return repos
}

// expectTx makes the transaction manager run the callback against repos.
func expectTx(txManager *mockRepo.MockTransactionManager, ctx context.Context, repos *txRepos) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		}).
		Once()
}

func testPrincipal(user *entity.User) *entity.Principal {
	return &entity.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Roles:  user.RoleNames(),
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Email:     "jane@example.com",
		Name:      "jane",
		Roles:     []*entity.Role{{ID: uuid.New(), Name: entity.RoleUser}},
		Addresses: []*entity.Address{},
		Cart:      &entity.Cart{ID: uuid.New()},
	}
}
