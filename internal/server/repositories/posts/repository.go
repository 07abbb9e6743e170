// Package posts persists poems (table puisi).
package posts

import (
	"context"

	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	// ListPublic returns public posts, newest first.
	ListPublic(ctx context.Context) ([]*models.Post, error)
	// ListByUser returns every post of userID, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*models.Post, error)
	// OwnerID returns the owner of post id. With lock set the row is
	// locked until the surrounding transaction ends.
	OwnerID(ctx context.Context, id int64, lock bool) (int64, error)
	// Update overwrites title and body; a nil isPublic keeps the stored flag.
	Update(ctx context.Context, id int64, title, body string, isPublic *bool) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}
