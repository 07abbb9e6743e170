package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestOpen_CreatesSchema(t *testing.T) {
	db := setupDB(t)

	assert.True(t, tableExists(t, db, "session"))
	assert.True(t, tableExists(t, db, "goose_db_version"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, RunMigrations(context.Background(), db))
}

func TestLoad_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	s, err := r.Load(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Nil(t, s)
}

func TestSaveLoadClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	savedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, r.Save(ctx, &Session{Token: "t1", User: models.Principal{ID: 1, UserName: "alice"}, SavedAt: savedAt}))
	require.NoError(t, r.Save(ctx, &Session{Token: "t2", User: models.Principal{ID: 2, UserName: "bob"}, SavedAt: savedAt}))

	s, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Session{Token: "t2", User: models.Principal{ID: 2, UserName: "bob"}, SavedAt: savedAt}, s)

	require.NoError(t, r.Clear(ctx))
	require.NoError(t, r.Clear(ctx))

	_, err = r.Load(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSave_StampsTime(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	s := &Session{Token: "t", User: models.Principal{ID: 1, UserName: "alice"}}
	require.NoError(t, r.Save(ctx, s))
	assert.False(t, s.SavedAt.IsZero())

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.SavedAt.Equal(s.SavedAt))
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.db")

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestPersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(db).Save(ctx, &Session{Token: "t", User: models.Principal{ID: 7, UserName: "eve"}}))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	s, err := NewSQLiteRepository(db).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "eve", s.User.UserName)
}

func TestErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Load(ctx)
	assert.ErrorContains(t, err, "failed to load session")
	assert.ErrorContains(t, r.Save(ctx, &Session{Token: "t"}), "failed to save session")
	assert.ErrorContains(t, r.Clear(ctx), "failed to clear session")
}
