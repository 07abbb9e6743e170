// Package requestid carries the id of the inbound request through a
// context so that log lines and outgoing calls of every service can be
// correlated.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh request id.
func New() string {
	return uuid.NewString()
}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From returns the id stored in ctx, or "" when there is none.
func From(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// OrNew returns id unless it is empty, in which case a fresh one.
func OrNew(id string) string {
	if id == "" {
		return New()
	}
	return id
}
