package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/services"
)

type AuthHandler struct {
	users *services.UserService
	gate  *Gate
}

func NewAuthHandler(users *services.UserService, gate *Gate) *AuthHandler {
	return &AuthHandler{users: users, gate: gate}
}

func (h *AuthHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.HandleRoot)
	mux.HandleFunc("GET /health", healthHandler("auth", time.Now))
	mux.HandleFunc("POST /register", h.HandleRegister)
	mux.HandleFunc("POST /login", h.HandleLogin)
	mux.HandleFunc("GET /user/{id}", h.HandleGetUser)
	mux.HandleFunc("POST /validate-token", h.gate.Guard(true, h.HandleValidateToken))
	mux.HandleFunc("GET /me", h.gate.Guard(true, h.HandleMe))
	return mux
}

func (h *AuthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Auth Service is up"))
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := decode(w, r, &req); err != nil {
		sendError(w, r, err)
		return
	}

	u, err := h.users.Register(r.Context(), req.UserName, req.Password)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// HandleLogin answers an unknown user with 400 and a wrong password with
// 401.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialsRequest
	if err := decode(w, r, &req); err != nil {
		sendError(w, r, err)
		return
	}

	res, err := h.users.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			sendErrorStatus(w, r, http.StatusBadRequest, err)
			return
		}
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *AuthHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}

	u, err := h.users.Lookup(r.Context(), id)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *AuthHandler) HandleValidateToken(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ValidateTokenResponse{Valid: true, User: p})
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		sendError(w, r, err)
		return
	}

	u, err := h.users.Me(r.Context(), p)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
