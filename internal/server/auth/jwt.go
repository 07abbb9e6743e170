// Package auth issues and verifies the HS256 bearer tokens shared by all
// puisi services. Verification needs only the shared secret, so every
// service can check a token without calling the issuer.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the principal next to the registered iat/exp claims.
type Claims struct {
	jwt.RegisteredClaims
	ID       int64  `json:"id"`
	UserName string `json:"username"`
}

// TokenManager signs and verifies tokens with one secret.
type TokenManager struct {
	secretKey []byte
	validity  time.Duration
	now       func() time.Time
}

func NewTokenManager(secretKey []byte, validity time.Duration) *TokenManager {
	return &TokenManager{secretKey: secretKey, validity: validity, now: time.Now}
}

// WithClock returns a copy that reads the current time from now.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	c := *m
	c.now = now
	return &c
}

// Issue mints a token for p valid from now until now+validity.
func (m *TokenManager) Issue(p models.Principal) (string, error) {
	issuedAt := m.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.validity)),
		},
		ID:       p.ID,
		UserName: p.UserName,
	})

	return token.SignedString(m.secretKey)
}

// Verify checks signature and expiry and returns the principal.
//
// Errors: common.ErrorMissingToken, common.ErrTokenExpired,
// common.ErrInvalidSignature, common.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (models.Principal, error) {
	if tokenString == "" {
		return models.Principal{}, common.ErrorMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secretKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Principal{}, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Principal{}, common.ErrInvalidSignature
		default:
			return models.Principal{}, common.ErrInvalidToken
		}
	}

	if !token.Valid || claims.ID <= 0 || claims.UserName == "" {
		return models.Principal{}, common.ErrInvalidToken
	}

	return models.Principal{ID: claims.ID, UserName: claims.UserName}, nil
}
