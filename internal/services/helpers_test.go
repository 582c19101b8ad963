package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/tracking-jobs/backend/internal/database"
	"github.com/tracking-jobs/backend/internal/models"
	"gorm.io/gorm"
)

// newTestDB runs the real migrations against an in-memory sqlite database.
// TranslateError matches the production gorm config so duplicate-key
// detection behaves the same way.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	user := &models.User{ID: id, Email: id + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strptr(s string) *string { return &s }
