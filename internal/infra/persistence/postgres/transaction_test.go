package postgres

import (
	"context"
	"testing"

	"openshop/internal/domain/entity"
	"openshop/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		role, err := factory.RoleRepo().FindByRoleName(ctx, entity.RoleUser)
		if err != nil {
			return err
		}

		return factory.UserRepo().Create(ctx, &entity.User{
			Email:        "tx@example.com",
			PasswordHash: "hashed",
			Roles:        []*entity.Role{role},
			Cart:         &entity.Cart{},
		})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@example.com")
	assert.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.UserRepo().Create(ctx, &entity.User{Email: "rollback@example.com", PasswordHash: "hashed"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "rollback@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			_ = factory.UserRepo().Create(ctx, &entity.User{Email: "panic@example.com", PasswordHash: "hashed"})
			panic("unexpected")
		})
	})

	_, err := NewUserRepository(db).FindByEmail(ctx, "panic@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
