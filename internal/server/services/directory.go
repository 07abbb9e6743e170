package services

import (
	"context"

	"github.com/dmitrijs2005/puisi/internal/server/models"
)

// UserDirectory resolves user identities owned by the auth service.
type UserDirectory interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// PostDirectory resolves posts owned by the puisi service.
type PostDirectory interface {
	GetPost(ctx context.Context, id int64) (*models.Post, error)
}
