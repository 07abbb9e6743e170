package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/config"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/repomanager"
)

// ReactionService manages likes and comments. Post existence and the
// acting user's name are checked against the owning services on every
// write.
type ReactionService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	users           UserDirectory
	posts           PostDirectory
	strictOwnership bool
}

func NewReactionService(db *sql.DB, m repomanager.RepositoryManager, users UserDirectory, posts PostDirectory, cfg *config.Config) *ReactionService {
	return &ReactionService{
		db:              db,
		repomanager:     m,
		users:           users,
		posts:           posts,
		strictOwnership: cfg.StrictOwnership,
	}
}

// author resolves the post and the acting user before a write.
func (s *ReactionService) author(ctx context.Context, principal models.Principal, postID int64) (*models.User, error) {
	if _, err := s.posts.GetPost(ctx, postID); err != nil {
		return nil, common.ErrorNotFound
	}
	user, err := s.users.GetUser(ctx, principal.ID)
	if err != nil {
		return nil, common.ErrorInvalidPrincipal
	}
	return user, nil
}

// Like is idempotent: liking an already liked post succeeds.
func (s *ReactionService) Like(ctx context.Context, principal models.Principal, postID int64) error {
	if postID <= 0 {
		return common.ErrorInvalidInput
	}

	user, err := s.author(ctx, principal, postID)
	if err != nil {
		return err
	}

	_, err = s.repomanager.Likes(s.db).Create(ctx, &models.Like{
		UserID:   principal.ID,
		UserName: user.UserName,
		PostID:   postID,
	})
	if err != nil {
		return internalError("create like", err)
	}
	return nil
}

func (s *ReactionService) Unlike(ctx context.Context, principal models.Principal, postID int64) error {
	if postID <= 0 {
		return common.ErrorInvalidInput
	}
	if err := s.repomanager.Likes(s.db).Delete(ctx, principal.ID, postID); err != nil {
		return repoError("delete like", err)
	}
	return nil
}

func (s *ReactionService) LikeCount(ctx context.Context, postID int64) (*models.Count, error) {
	n, err := s.repomanager.Likes(s.db).Count(ctx, postID)
	if err != nil {
		return nil, internalError("count likes", err)
	}
	return &models.Count{PostID: postID, Total: n}, nil
}

func (s *ReactionService) LikedBy(ctx context.Context, principal models.Principal, postID int64) (bool, error) {
	ok, err := s.repomanager.Likes(s.db).Exists(ctx, principal.ID, postID)
	if err != nil {
		return false, internalError("check like", err)
	}
	return ok, nil
}

// Likers lists who liked postID, newest first.
func (s *ReactionService) Likers(ctx context.Context, postID int64) ([]*models.Like, error) {
	list, err := s.repomanager.Likes(s.db).ListByPost(ctx, postID)
	if err != nil {
		return nil, internalError("list likes", err)
	}
	return list, nil
}

func (s *ReactionService) Comment(ctx context.Context, principal models.Principal, postID int64, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if postID <= 0 || body == "" {
		return nil, common.ErrorInvalidInput
	}

	user, err := s.author(ctx, principal, postID)
	if err != nil {
		return nil, err
	}

	c, err := s.repomanager.Comments(s.db).Create(ctx, &models.Comment{
		UserID:   principal.ID,
		UserName: user.UserName,
		PostID:   postID,
		Body:     body,
	})
	if err != nil {
		return nil, internalError("create comment", err)
	}
	return c, nil
}

// ListComments returns the comments of postID, newest first.
func (s *ReactionService) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	list, err := s.repomanager.Comments(s.db).ListByPost(ctx, postID)
	if err != nil {
		return nil, internalError("list comments", err)
	}
	return list, nil
}

func (s *ReactionService) CommentCount(ctx context.Context, postID int64) (*models.Count, error) {
	n, err := s.repomanager.Comments(s.db).Count(ctx, postID)
	if err != nil {
		return nil, internalError("count comments", err)
	}
	return &models.Count{PostID: postID, Total: n}, nil
}

func (s *ReactionService) UpdateComment(ctx context.Context, principal models.Principal, id int64, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, common.ErrorInvalidInput
	}

	var updated *models.Comment
	err := withOwnership(ctx, s.db, s.strictOwnership, principal.ID, s.commentOwner(id),
		func(ctx context.Context, h dbx.DBTX) error {
			c, err := s.repomanager.Comments(h).UpdateBody(ctx, id, body)
			if err != nil {
				return repoError("update comment", err)
			}
			updated = c
			return nil
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ReactionService) DeleteComment(ctx context.Context, principal models.Principal, id int64) error {
	return withOwnership(ctx, s.db, s.strictOwnership, principal.ID, s.commentOwner(id),
		func(ctx context.Context, h dbx.DBTX) error {
			if err := s.repomanager.Comments(h).Delete(ctx, id); err != nil {
				return repoError("delete comment", err)
			}
			return nil
		})
}

func (s *ReactionService) commentOwner(id int64) ownerFunc {
	return func(ctx context.Context, h dbx.DBTX, lock bool) (int64, error) {
		return s.repomanager.Comments(h).OwnerID(ctx, id, lock)
	}
}
