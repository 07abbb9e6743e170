// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/migrations"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/comments"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/likes"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/posts"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Posts(db dbx.DBTX) posts.Repository {
	return posts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Likes(db dbx.DBTX) likes.Repository {
	return likes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Comments(db dbx.DBTX) comments.Repository {
	return comments.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// VersionTable names the goose bookkeeping table of service. The three
// services share one database, so each tracks its own schema version.
func VersionTable(service string) string {
	return "goose_" + service + "_version"
}

// RunMigrations applies the embedded migrations under the service's
// directory. Every service keeps its own version table.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB, service string) error {
	if _, err := fs.Stat(migrations.Migrations, service); err != nil {
		return fmt.Errorf("no migrations for service %q: %w", service, err)
	}

	goose.SetBaseFS(migrations.Migrations)
	goose.SetTableName(VersionTable(service))
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, service); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
