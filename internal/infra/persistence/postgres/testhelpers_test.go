package postgres

import (
	"context"
	"testing"

	"openshop/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema and seed roles.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db, []string{entity.RoleUser, entity.RoleAdmin}))

	return db
}

// createTestUser registers a user with the USER role and an empty cart.
func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	ctx := context.Background()

	role, err := NewRoleRepository(db).FindByRoleName(ctx, entity.RoleUser)
	require.NoError(t, err)

	user := &entity.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hashed",
		Roles:        []*entity.Role{role},
		Cart:         &entity.Cart{},
	}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	return user
}
