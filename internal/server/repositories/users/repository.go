// Package users is the credential store: persistence of usernames and
// password hashes.
package users

import (
	"context"

	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills ID and CreatedAt. A taken username
	// yields common.ErrorDuplicateUsername.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByLogin returns the user including its password hash.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	// GetUserByID returns public fields only; PasswordHash stays nil.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}
