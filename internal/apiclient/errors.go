package apiclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/puisi/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d", e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// Unwrap returns the sentinel named by Code, or one derived from Status
// when the server sent no code.
func (e *APIError) Unwrap() error {
	if e.Code != "" {
		return common.ErrorFromCode(e.Code)
	}
	switch e.Status {
	case http.StatusBadRequest:
		return common.ErrorInvalidInput
	case http.StatusUnauthorized:
		return common.ErrInvalidToken
	case http.StatusForbidden:
		return common.ErrorForbidden
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		return common.ErrorInternal
	}
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
