package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/comments"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/likes"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/posts"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/users"
)

type RepositoryManager interface {
	// RunMigrations applies the schema owned by service.
	RunMigrations(ctx context.Context, db *sql.DB, service string) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Likes(db dbx.DBTX) likes.Repository
	Comments(db dbx.DBTX) comments.Repository
}
