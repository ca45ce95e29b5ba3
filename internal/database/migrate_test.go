package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmontiron/portfolio-api/pkg/config"
	sqlitedb "github.com/fmontiron/portfolio-api/pkg/database"
)

func openTestStore(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlitedb.NewSQLite(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "portfolio.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestMigrateSeedsOnce(t *testing.T) {
	db := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))

	assert.Equal(t, 8, countRows(t, db, "settings"))
	assert.Equal(t, 2, countRows(t, db, "projects"))
	assert.Equal(t, 5, countRows(t, db, "experiences"))
	assert.Equal(t, 0, countRows(t, db, "contact_messages"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db))

	assert.Equal(t, 8, countRows(t, db, "settings"))
	assert.Equal(t, 2, countRows(t, db, "projects"))
	assert.Equal(t, 5, countRows(t, db, "experiences"))
}

func TestEnsureAdminSeedsSingleAccount(t *testing.T) {
	db := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, EnsureAdmin(ctx, db, "changeme123", nil))
	require.NoError(t, EnsureAdmin(ctx, db, "changeme123", nil))

	assert.Equal(t, 1, countRows(t, db, "admin_users"))

	var username string
	require.NoError(t, db.Get(&username, "SELECT username FROM admin_users"))
	assert.Equal(t, "admin", username)
}

func TestEnsureAdminKeepsExistingAccount(t *testing.T) {
	db := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, EnsureAdmin(ctx, db, "first-password", nil))

	var before string
	require.NoError(t, db.Get(&before, "SELECT password_hash FROM admin_users"))

	require.NoError(t, EnsureAdmin(ctx, db, "second-password", nil))

	var after string
	require.NoError(t, db.Get(&after, "SELECT password_hash FROM admin_users"))
	assert.Equal(t, before, after, "a later run never rotates the stored hash")
}
