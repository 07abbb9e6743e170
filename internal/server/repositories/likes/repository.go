// Package likes persists likes on poems. A user likes a poem at most once.
package likes

import (
	"context"

	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type Repository interface {
	// Create records the like. Liking twice is a no-op; created reports
	// whether a new row was inserted.
	Create(ctx context.Context, like *models.Like) (created bool, err error)
	// Delete removes the like of userID on postID or returns
	// common.ErrorNotFound when there was none.
	Delete(ctx context.Context, userID, postID int64) error
	Count(ctx context.Context, postID int64) (int64, error)
	Exists(ctx context.Context, userID, postID int64) (bool, error)
	// ListByPost returns the likes of postID, newest first.
	ListByPost(ctx context.Context, postID int64) ([]*models.Like, error)
}
