package common

import "errors"

// Wire codes carried in the "code" field of error responses.
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeDuplicateUsername   = "DUPLICATE_USERNAME"
	CodeInvalidCredential   = "INVALID_CREDENTIAL"
	CodeMissingToken        = "MISSING_TOKEN"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeInvalidSignature    = "INVALID_SIGNATURE"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeNotFound            = "NOT_FOUND"
	CodeForbidden           = "FORBIDDEN"
	CodeInvalidPrincipal    = "INVALID_PRINCIPAL"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrorInvalidInput, CodeInvalidInput},
	{ErrorDuplicateUsername, CodeDuplicateUsername},
	{ErrorInvalidCredential, CodeInvalidCredential},
	{ErrorMissingToken, CodeMissingToken},
	{ErrInvalidToken, CodeInvalidToken},
	{ErrInvalidSignature, CodeInvalidSignature},
	{ErrTokenExpired, CodeTokenExpired},
	{ErrorNotFound, CodeNotFound},
	{ErrorForbidden, CodeForbidden},
	{ErrorInvalidPrincipal, CodeInvalidPrincipal},
	{ErrorUpstreamUnavailable, CodeUpstreamUnavailable},
	{ErrorInternal, CodeInternal},
}

// ErrorCode returns the wire code of the first sentinel err matches, or
// CodeInternal.
func ErrorCode(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// ErrorFromCode is the inverse of ErrorCode. Unknown codes map to
// ErrorInternal.
func ErrorFromCode(code string) error {
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}
	return ErrorInternal
}
