package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/auth"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/repositories/memory"
	usersrepo "github.com/dmitrijs2005/puisi/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *auth.TokenManager) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := testConfig()
	tokens := auth.NewTokenManager([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	return NewUserService(db, memory.NewStore(), tokens, cfg), tokens
}

func TestRegisterLogin_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, tokens := newUserService(t)

	u, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)
	assert.Positive(t, u.ID)

	res, err := s.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.Principal{ID: u.ID, UserName: "alice"}, res.User)

	p, err := tokens.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User, p)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	ctx := context.Background()
	db, _ := newSQLMockDB(t)
	store := memory.NewStore()
	cfg := testConfig()
	s := NewUserService(db, store, auth.NewTokenManager([]byte("k"), time.Hour), cfg)

	_, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	stored, err := store.Users(db).GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, []byte("secret"), stored.PasswordHash)
	ok, err := auth.CheckPassword(stored.PasswordHash, "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegister_Duplicate(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)

	_, err := s.Register(ctx, "alice", "one")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "two")
	assert.ErrorIs(t, err, common.ErrorDuplicateUsername)
}

func TestRegister_InvalidInput(t *testing.T) {
	s, _ := newUserService(t)

	cases := []struct{ name, user, pass string }{
		{"empty username", "", "p"},
		{"empty password", "alice", ""},
		{"too short", "al", "p"},
		{"too long", strings.Repeat("a", 21), "p"},
		{"bad chars", "al ice", "p"},
		{"password over bcrypt limit", "alice", strings.Repeat("x", 73)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tc.user, tc.pass)
			assert.ErrorIs(t, err, common.ErrorInvalidInput)
		})
	}
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)
	_, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)

	_, err = s.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Login(ctx, "", "secret")
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = s.Login(ctx, "alice", strings.Repeat("x", 73))
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)
}

type brokenUsersRepo struct{}

func (brokenUsersRepo) Create(context.Context, *models.User) (*models.User, error) {
	return nil, errBoom{}
}
func (brokenUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, errBoom{}
}
func (brokenUsersRepo) GetUserByID(context.Context, int64) (*models.User, error) {
	return nil, errBoom{}
}

type brokenUsersManager struct{ *memory.Store }

func (brokenUsersManager) Users(dbx.DBTX) usersrepo.Repository { return brokenUsersRepo{} }

func TestUserService_RepositoryErrorsAreInternal(t *testing.T) {
	ctx := context.Background()
	db, _ := newSQLMockDB(t)
	cfg := testConfig()
	s := NewUserService(db, brokenUsersManager{memory.NewStore()}, auth.NewTokenManager([]byte("k"), time.Hour), cfg)

	_, err := s.Register(ctx, "alice", "secret")
	assert.True(t, isInternal(err), "got %v", err)
	assert.True(t, errors.As(err, new(errBoom)))

	_, err = s.Login(ctx, "alice", "secret")
	assert.True(t, isInternal(err), "got %v", err)

	_, err = s.Lookup(ctx, 1)
	assert.True(t, isInternal(err), "got %v", err)
}

func TestLookupAndMe(t *testing.T) {
	ctx := context.Background()
	s, _ := newUserService(t)
	u, err := s.Register(ctx, "alice", "secret")
	require.NoError(t, err)

	got, err := s.Lookup(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
	assert.Nil(t, got.PasswordHash)

	me, err := s.Me(ctx, models.Principal{ID: u.ID, UserName: "alice"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)

	_, err = s.Lookup(ctx, 999)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Lookup(ctx, 0)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
