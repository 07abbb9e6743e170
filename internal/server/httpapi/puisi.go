package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/services"
)

type PuisiHandler struct {
	posts *services.PostService
	gate  *Gate
}

func NewPuisiHandler(posts *services.PostService, gate *Gate) *PuisiHandler {
	return &PuisiHandler{posts: posts, gate: gate}
}

func (h *PuisiHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler("puisi", time.Now))
	mux.HandleFunc("GET /puisi", h.HandleList)
	mux.HandleFunc("GET /puisi/{id}", h.HandleGet)
	mux.HandleFunc("GET /puisi/user/{id}", h.HandleListByUser)
	mux.HandleFunc("POST /puisi", h.gate.Guard(true, h.HandleCreate))
	mux.HandleFunc("PUT /puisi/{id}", h.gate.Guard(true, h.HandleUpdate))
	mux.HandleFunc("DELETE /puisi/{id}", h.gate.Guard(true, h.HandleDelete))
	return mux
}

func (h *PuisiHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.posts.List(r.Context())
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *PuisiHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}

	p, err := h.posts.Get(r.Context(), id)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PuisiHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}

	list, err := h.posts.ListByUser(r.Context(), userID)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *PuisiHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, err := principal(r)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req models.PostRequest
	if err := decode(w, r, &req); err != nil {
		sendError(w, r, err)
		return
	}

	p, err := h.posts.Create(r.Context(), caller, services.PostInput{Title: req.Title, Body: req.Body, IsPublic: req.IsPublic})
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PuisiHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, err := principal(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}

	var req models.PostRequest
	if err := decode(w, r, &req); err != nil {
		sendError(w, r, err)
		return
	}

	p, err := h.posts.Update(r.Context(), caller, id, services.PostInput{Title: req.Title, Body: req.Body, IsPublic: req.IsPublic})
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PuisiHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, err := principal(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}

	if err := h.posts.Delete(r.Context(), caller, id); err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "post deleted"})
}
