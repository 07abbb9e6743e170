package httpapi

import (
	"context"

	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type ctxKey string

const principalKey ctxKey = "principal"

func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom returns the authenticated caller, if the gate found one.
func PrincipalFrom(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(models.Principal)
	return p, ok
}
