// Package common defines shared constants and sentinel errors used across
// the puisi services and the client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound          = errors.New("not found")
	ErrorDuplicateUsername = errors.New("username already taken")

	// Service-level errors.
	ErrorInternal            = errors.New("internal error")
	ErrorInvalidInput        = errors.New("invalid input")
	ErrorInvalidCredential   = errors.New("invalid credential")
	ErrorInvalidPrincipal    = errors.New("invalid principal")
	ErrorForbidden           = errors.New("forbidden")
	ErrorUpstreamUnavailable = errors.New("upstream unavailable")

	// Auth errors.
	ErrorMissingToken   = errors.New("missing token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidSignature = errors.New("invalid token signature")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
