package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/auth"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

// TokenValidator confirms a token with the auth service.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (models.Principal, error)
}

// Gate authenticates requests with the shared token secret and, when a
// remote validator is set, additionally with the auth service.
type Gate struct {
	tokens *auth.TokenManager
	remote TokenValidator
}

// NewGate returns a gate; remote may be nil.
func NewGate(tokens *auth.TokenManager, remote TokenValidator) *Gate {
	return &Gate{tokens: tokens, remote: remote}
}

// Guard puts the caller's Principal into the request context before
// calling next. With required set a missing or bad token ends the request
// with 401; otherwise the request goes on anonymously.
func (g *Gate) Guard(required bool, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := g.authenticate(r)
		if err != nil {
			if required {
				sendError(w, r, err)
				return
			}
			next(w, r)
			return
		}
		if rec, ok := w.(*statusRecorder); ok {
			rec.userID = p.ID
		}
		next(w, r.WithContext(WithPrincipal(r.Context(), p)))
	}
}

func (g *Gate) authenticate(r *http.Request) (models.Principal, error) {
	token, err := bearerToken(r)
	if err != nil {
		return models.Principal{}, err
	}

	p, err := g.tokens.Verify(token)
	if err != nil {
		return models.Principal{}, err
	}

	if g.remote != nil {
		if _, err := g.remote.ValidateToken(r.Context(), token); err != nil {
			return models.Principal{}, err
		}
	}
	return p, nil
}

// bearerToken extracts the token of an "Authorization: Bearer <token>"
// header. Any other scheme, including a bare token, is rejected.
func bearerToken(r *http.Request) (string, error) {
	h := strings.TrimSpace(r.Header.Get(common.AuthorizationHeaderName))
	if h == "" || strings.EqualFold(h, common.BearerScheme) {
		return "", common.ErrorMissingToken
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", common.ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", common.ErrorMissingToken
	}
	return token, nil
}
