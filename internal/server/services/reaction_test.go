package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReactionService(t *testing.T) (*ReactionService, *fakeDirectory) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	dir := newDirectory()
	dir.posts[10] = &models.Post{ID: 10, UserID: alice.ID, UserName: "alice", Title: "Senja", IsPublic: true}
	return NewReactionService(db, memory.NewStore(), dir, dir, testConfig()), dir
}

func TestLike_IdempotentAndUnlike(t *testing.T) {
	ctx := context.Background()
	s, _ := newReactionService(t)

	require.NoError(t, s.Like(ctx, bob, 10))
	require.NoError(t, s.Like(ctx, bob, 10))

	c, err := s.LikeCount(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, &models.Count{PostID: 10, Total: 1}, c)

	liked, err := s.LikedBy(ctx, bob, 10)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = s.LikedBy(ctx, alice, 10)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, s.Unlike(ctx, bob, 10))
	c, _ = s.LikeCount(ctx, 10)
	assert.Equal(t, int64(0), c.Total)

	assert.ErrorIs(t, s.Unlike(ctx, bob, 10), common.ErrorNotFound)
}

func TestLike_Validation(t *testing.T) {
	ctx := context.Background()
	s, dir := newReactionService(t)

	assert.ErrorIs(t, s.Like(ctx, bob, 0), common.ErrorInvalidInput)
	assert.ErrorIs(t, s.Unlike(ctx, bob, -1), common.ErrorInvalidInput)
	assert.ErrorIs(t, s.Like(ctx, bob, 99), common.ErrorNotFound)

	delete(dir.users, bob.ID)
	assert.ErrorIs(t, s.Like(ctx, bob, 10), common.ErrorInvalidPrincipal)
}

func TestLike_UpstreamDownIsNotFound(t *testing.T) {
	s, dir := newReactionService(t)
	dir.err = errBoom{}

	assert.ErrorIs(t, s.Like(context.Background(), bob, 10), common.ErrorNotFound)
}

func TestLikers_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s, _ := newReactionService(t)

	require.NoError(t, s.Like(ctx, alice, 10))
	require.NoError(t, s.Like(ctx, bob, 10))

	likers, err := s.Likers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, likers, 2)
	assert.Equal(t, "bob", likers[0].UserName)
	assert.Equal(t, "alice", likers[1].UserName)
}

func TestComment_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, _ := newReactionService(t)

	c, err := s.Comment(ctx, bob, 10, "  indah sekali  ")
	require.NoError(t, err)
	assert.Equal(t, "indah sekali", c.Body)
	assert.Equal(t, "bob", c.UserName)

	_, err = s.Comment(ctx, alice, 10, "terima kasih")
	require.NoError(t, err)

	list, err := s.ListComments(ctx, 10)
	require.NoError(t, err)
	count, err := s.CommentCount(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(len(list)), count.Total)
	assert.Equal(t, "terima kasih", list[0].Body)

	_, err = s.UpdateComment(ctx, alice, c.ID, "diubah")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	updated, err := s.UpdateComment(ctx, bob, c.ID, " diubah ")
	require.NoError(t, err)
	assert.Equal(t, "diubah", updated.Body)

	assert.ErrorIs(t, s.DeleteComment(ctx, alice, c.ID), common.ErrorForbidden)
	require.NoError(t, s.DeleteComment(ctx, bob, c.ID))
	assert.ErrorIs(t, s.DeleteComment(ctx, bob, c.ID), common.ErrorNotFound)

	count, _ = s.CommentCount(ctx, 10)
	assert.Equal(t, int64(1), count.Total)
}

func TestComment_Validation(t *testing.T) {
	ctx := context.Background()
	s, _ := newReactionService(t)

	_, err := s.Comment(ctx, bob, 10, "   ")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = s.Comment(ctx, bob, 0, "x")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = s.Comment(ctx, bob, 77, "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.UpdateComment(ctx, bob, 1, "")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = s.UpdateComment(ctx, bob, 1234, "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
