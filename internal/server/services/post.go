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

// PostInput is the writable part of a post. A nil IsPublic means public on
// create and "keep the stored value" on update.
type PostInput struct {
	Title    string
	Body     string
	IsPublic *bool
}

func (in PostInput) normalize() (PostInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)
	if in.Title == "" || in.Body == "" {
		return in, common.ErrorInvalidInput
	}
	return in, nil
}

// PostService owns poems. Writers are resolved through the auth service so
// the stored username is the one current at write time.
type PostService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	users           UserDirectory
	strictOwnership bool
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager, users UserDirectory, cfg *config.Config) *PostService {
	return &PostService{
		db:              db,
		repomanager:     m,
		users:           users,
		strictOwnership: cfg.StrictOwnership,
	}
}

// List returns public posts, newest first.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	list, err := s.repomanager.Posts(s.db).ListPublic(ctx)
	if err != nil {
		return nil, internalError("list posts", err)
	}
	return list, nil
}

// ListByUser returns all posts of userID, private ones included.
func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]*models.Post, error) {
	list, err := s.repomanager.Posts(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, internalError("list user posts", err)
	}
	return list, nil
}

func (s *PostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	p, err := s.repomanager.Posts(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, repoError("get post", err)
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, principal models.Principal, in PostInput) (*models.Post, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, principal.ID)
	if err != nil {
		return nil, common.ErrorInvalidPrincipal
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	post, err := s.repomanager.Posts(s.db).Create(ctx, &models.Post{
		UserID:   principal.ID,
		UserName: user.UserName,
		Title:    in.Title,
		Body:     in.Body,
		IsPublic: isPublic,
	})
	if err != nil {
		return nil, internalError("create post", err)
	}
	return post, nil
}

// Update overwrites title and body of a post owned by principal.
func (s *PostService) Update(ctx context.Context, principal models.Principal, id int64, in PostInput) (*models.Post, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	var updated *models.Post
	err = withOwnership(ctx, s.db, s.strictOwnership, principal.ID, s.ownerOf(id),
		func(ctx context.Context, h dbx.DBTX) error {
			p, err := s.repomanager.Posts(h).Update(ctx, id, in.Title, in.Body, in.IsPublic)
			if err != nil {
				return repoError("update post", err)
			}
			updated = p
			return nil
		})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	return withOwnership(ctx, s.db, s.strictOwnership, principal.ID, s.ownerOf(id),
		func(ctx context.Context, h dbx.DBTX) error {
			if err := s.repomanager.Posts(h).Delete(ctx, id); err != nil {
				return repoError("delete post", err)
			}
			return nil
		})
}

func (s *PostService) ownerOf(id int64) ownerFunc {
	return func(ctx context.Context, h dbx.DBTX, lock bool) (int64, error) {
		return s.repomanager.Posts(h).OwnerID(ctx, id, lock)
	}
}
