package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/config"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
		PasswordHashCost:            4, // bcrypt.MinCost
	}
}

// fakeDirectory stands in for the auth and puisi services.
type fakeDirectory struct {
	users map[int64]*models.User
	posts map[int64]*models.Post
	err   error
}

func (d *fakeDirectory) GetUser(_ context.Context, id int64) (*models.User, error) {
	if d.err != nil {
		return nil, d.err
	}
	u, ok := d.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (d *fakeDirectory) GetPost(_ context.Context, id int64) (*models.Post, error) {
	if d.err != nil {
		return nil, d.err
	}
	p, ok := d.posts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

var (
	alice = models.Principal{ID: 1, UserName: "alice"}
	bob   = models.Principal{ID: 2, UserName: "bob"}
)

func newDirectory() *fakeDirectory {
	return &fakeDirectory{
		users: map[int64]*models.User{
			1: {ID: 1, UserName: "alice"},
			2: {ID: 2, UserName: "bob"},
		},
		posts: map[int64]*models.Post{},
	}
}

func boolPtr(b bool) *bool { return &b }

func isInternal(err error) bool { return errors.Is(err, common.ErrorInternal) }
