package likes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Idempotent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+likes\s*\(user_id,\s*username,\s*puisi_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\s*\(user_id,\s*puisi_id\)\s*DO\s+NOTHING$`
	mock.ExpectExec(q).WithArgs(int64(2), "bob", int64(10)).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(q).WithArgs(int64(2), "bob", int64(10)).WillReturnResult(sqlmock.NewResult(0, 0))

	like := &models.Like{UserID: 2, UserName: "bob", PostID: 10}

	created, err := repo.Create(context.Background(), like)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(context.Background(), like)
	require.NoError(t, err)
	assert.False(t, created)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+likes`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Like{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^DELETE FROM likes WHERE user_id = \$1 AND puisi_id = \$2$`
	mock.ExpectExec(q).WithArgs(int64(2), int64(10)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(int64(2), int64(10)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 2, 10))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2, 10), common.ErrorNotFound)
}

func TestCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM likes WHERE puisi_id = \$1$`).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.Count(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `^SELECT EXISTS \(SELECT 1 FROM likes WHERE user_id = \$1 AND puisi_id = \$2\)$`
	mock.ExpectQuery(q).WithArgs(int64(2), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q).WithArgs(int64(3), int64(10)).
		WillReturnError(errors.New("boom"))

	ok, err := repo.Exists(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.Exists(context.Background(), 3, 10)
	assert.Error(t, err)
}

func TestListByPost(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)FROM\s+likes\s+WHERE\s+puisi_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC$`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "username", "puisi_id", "created_at"}).
			AddRow(int64(5), int64(2), "bob", int64(10), now).
			AddRow(int64(4), int64(1), "alice", int64(10), now.Add(-time.Minute)))
	mock.ExpectQuery(`FROM\s+likes`).WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "username", "puisi_id", "created_at"}))

	got, err := repo.ListByPost(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bob", got[0].UserName)
	assert.Equal(t, "alice", got[1].UserName)

	empty, err := repo.ListByPost(context.Background(), 11)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
