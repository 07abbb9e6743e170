package memory

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repomanager.RepositoryManager = (*Store)(nil)

func TestUsers_DuplicateAndLookup(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Users(nil)

	u, err := repo.Create(ctx, &models.User{UserName: "alice", PasswordHash: []byte("h")})
	require.NoError(t, err)
	assert.Positive(t, u.ID)

	_, err = repo.Create(ctx, &models.User{UserName: "alice"})
	assert.ErrorIs(t, err, common.ErrorDuplicateUsername)

	byID, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, byID.PasswordHash)

	_, err = repo.GetUserByLogin(ctx, "bob")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPosts_NewestFirstAndVisibility(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Posts(nil)

	a, _ := repo.Create(ctx, &models.Post{UserID: 1, Title: "a", IsPublic: true})
	b, _ := repo.Create(ctx, &models.Post{UserID: 1, Title: "b", IsPublic: false})
	c, _ := repo.Create(ctx, &models.Post{UserID: 2, Title: "c", IsPublic: true})

	public, err := repo.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, c.ID, public[0].ID)
	assert.Equal(t, a.ID, public[1].ID)

	mine, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, b.ID, mine[0].ID)

	updated, err := repo.Update(ctx, b.ID, "b2", "x", nil)
	require.NoError(t, err)
	assert.False(t, updated.IsPublic)

	require.NoError(t, repo.Delete(ctx, b.ID))
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), common.ErrorNotFound)
}

func TestLikes_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Likes(nil)

	created, err := repo.Create(ctx, &models.Like{UserID: 1, PostID: 9})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, &models.Like{UserID: 1, PostID: 9})
	require.NoError(t, err)
	assert.False(t, created)

	n, _ := repo.Count(ctx, 9)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Delete(ctx, 1, 9))
	assert.ErrorIs(t, repo.Delete(ctx, 1, 9), common.ErrorNotFound)
}

func TestComments_CountMatchesList(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Comments(nil)

	for _, body := range []string{"satu", "dua", "tiga"} {
		_, err := repo.Create(ctx, &models.Comment{UserID: 1, PostID: 5, Body: body})
		require.NoError(t, err)
	}
	_, _ = repo.Create(ctx, &models.Comment{UserID: 1, PostID: 6, Body: "lain"})

	list, err := repo.ListByPost(ctx, 5)
	require.NoError(t, err)
	n, err := repo.Count(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(len(list)), n)
	assert.Equal(t, "tiga", list[0].Body)
}
