package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

const maxBodyBytes = 1 << 20

var statusByCode = map[string]int{
	common.CodeInvalidInput:        http.StatusBadRequest,
	common.CodeDuplicateUsername:   http.StatusBadRequest,
	common.CodeInvalidPrincipal:    http.StatusBadRequest,
	common.CodeInvalidCredential:   http.StatusUnauthorized,
	common.CodeMissingToken:        http.StatusUnauthorized,
	common.CodeInvalidToken:        http.StatusUnauthorized,
	common.CodeInvalidSignature:    http.StatusUnauthorized,
	common.CodeTokenExpired:        http.StatusUnauthorized,
	common.CodeForbidden:           http.StatusForbidden,
	common.CodeNotFound:            http.StatusNotFound,
	common.CodeUpstreamUnavailable: http.StatusInternalServerError,
	common.CodeInternal:            http.StatusInternalServerError,
}

// StatusOf maps err to its HTTP status.
func StatusOf(err error) int {
	if s, ok := statusByCode[common.ErrorCode(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func sendError(w http.ResponseWriter, r *http.Request, err error) {
	sendErrorStatus(w, r, StatusOf(err), err)
}

// sendErrorStatus writes the error body with an explicit status. Only the
// sentinel's message reaches the client; the full chain stays in the logs.
func sendErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := common.ErrorCode(err)
	if rec, ok := w.(*statusRecorder); ok {
		rec.err = err
	}
	writeJSON(w, status, models.ErrorResponse{
		Error: common.ErrorFromCode(code).Error(),
		Code:  code,
	})
}

// decode reads a JSON body into v. Malformed or oversized bodies are
// common.ErrorInvalidInput.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return common.ErrorInvalidInput
		}
		return errors.Join(common.ErrorInvalidInput, err)
	}
	return nil
}

// pathID parses a positive integer path value.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorInvalidInput
	}
	return id, nil
}

// principal returns the caller placed in the context by a required gate.
func principal(r *http.Request) (models.Principal, error) {
	p, ok := PrincipalFrom(r.Context())
	if !ok {
		return models.Principal{}, common.ErrorMissingToken
	}
	return p, nil
}
