// Package services contains server-side business logic. This file implements
// UserService, the credential store of the auth service: registration,
// login, and identity lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/auth"
	"github.com/dmitrijs2005/puisi/internal/server/config"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/repomanager"
)

var userNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

type UserService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	tokens       *auth.TokenManager
	passwordCost int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenManager, cfg *config.Config) *UserService {
	return &UserService{
		db:           db,
		repomanager:  m,
		tokens:       tokens,
		passwordCost: cfg.PasswordHashCost,
	}
}

// Register creates a user. Usernames are 3 to 20 characters of
// [A-Za-z0-9_]; a taken name yields common.ErrorDuplicateUsername.
func (s *UserService) Register(ctx context.Context, userName, password string) (*models.User, error) {
	if userName == "" || password == "" || !userNamePattern.MatchString(userName) {
		return nil, common.ErrorInvalidInput
	}

	hash, err := auth.HashPassword(password, s.passwordCost)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidInput) {
			return nil, common.ErrorInvalidInput
		}
		return nil, internalError("hash password", err)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{UserName: userName, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			return nil, common.ErrorDuplicateUsername
		}
		return nil, internalError("create user", err)
	}

	return u, nil
}

// Login checks the password and mints a token. An unknown user yields
// common.ErrorNotFound, a wrong password common.ErrorInvalidCredential.
func (s *UserService) Login(ctx context.Context, userName, password string) (*models.LoginResponse, error) {
	if userName == "" || password == "" {
		return nil, common.ErrorInvalidInput
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		return nil, repoError("get user", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, internalError("check password", err)
	}
	if !ok {
		return nil, common.ErrorInvalidCredential
	}

	principal := models.Principal{ID: user.ID, UserName: user.UserName}
	token, err := s.tokens.Issue(principal)
	if err != nil {
		return nil, internalError("issue token", err)
	}

	return &models.LoginResponse{Token: token, User: principal}, nil
}

// Lookup returns the public identity of user id.
func (s *UserService) Lookup(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, common.ErrorNotFound
	}

	u, err := s.repomanager.Users(s.db).GetUserByID(ctx, id)
	if err != nil {
		return nil, repoError("get user", err)
	}
	return u, nil
}

// Me resolves the identity behind a verified token.
func (s *UserService) Me(ctx context.Context, p models.Principal) (*models.User, error) {
	return s.Lookup(ctx, p.ID)
}
