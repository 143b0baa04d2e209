package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
// A single connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func TestSeedPopulatesSampleData(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	d := New(db)

	users, err := d.UserRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, users, 3)

	posts, err := d.PostRepo().FindRecent(0)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	tags, err := d.TagRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, tags, 3)

	// Seeding twice must not duplicate anything
	require.NoError(t, Seed(db))
	users, err = d.UserRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, users, 3)
}
