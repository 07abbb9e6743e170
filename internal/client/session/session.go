// Package session keeps the CLI's login between runs in a local SQLite
// file. At most one session is stored at a time.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/puisi/internal/client/session/migrations"
	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Session struct {
	Token   string
	User    models.Principal
	SavedAt time.Time
}

type Repository interface {
	// Load returns common.ErrorNotFound when nothing is saved.
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetTableName("goose_db_version")

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the session file at path, along with
// its parent directory.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (*Session, error) {
	var (
		s       Session
		savedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT token, user_id, username, saved_at FROM session WHERE id = 1`,
	).Scan(&s.Token, &s.User.ID, &s.User.UserName, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	s.SavedAt = time.Unix(savedAt, 0).UTC()
	return &s, nil
}

// Save replaces the stored session. A zero SavedAt is set to now.
func (r *SQLiteRepository) Save(ctx context.Context, s *Session) error {
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now().UTC().Truncate(time.Second)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (id, token, user_id, username, saved_at) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			username = excluded.username,
			saved_at = excluded.saved_at
	`, s.Token, s.User.ID, s.User.UserName, s.SavedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
