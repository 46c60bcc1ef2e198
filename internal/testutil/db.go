// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"skillswap/internal/microservices/http-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns a migrated in-memory SQLite database private to t.
// The pool is pinned to one connection so concurrent callers serialize the
// same way row locks serialize them on postgres.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// CreateUser inserts an active, public user with an empty rating summary.
func CreateUser(t *testing.T, db *gorm.DB, fullName string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    strings.ToLower(strings.ReplaceAll(fullName, " ", ".")) + "@example.com",
		FullName: fullName,
		Password: "x",
		Role:     models.RoleUser,
		IsPublic: true,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.RatingSummary{UserID: user.ID}).Error)
	return user
}
