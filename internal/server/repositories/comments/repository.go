// Package comments persists comments on poems.
package comments

import (
	"context"

	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	// ListByPost returns the comments of postID, newest first.
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	Count(ctx context.Context, postID int64) (int64, error)
	// OwnerID returns the author of comment id, locking the row when lock
	// is set.
	OwnerID(ctx context.Context, id int64, lock bool) (int64, error)
	UpdateBody(ctx context.Context, id int64, body string) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}
