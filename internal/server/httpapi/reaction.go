package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/puisi/internal/server/models"
	"github.com/dmitrijs2005/puisi/internal/server/services"
)

type ReactionHandler struct {
	reactions *services.ReactionService
	gate      *Gate
}

func NewReactionHandler(reactions *services.ReactionService, gate *Gate) *ReactionHandler {
	return &ReactionHandler{reactions: reactions, gate: gate}
}

func (h *ReactionHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler("reaction", time.Now))
	mux.HandleFunc("POST /like", h.gate.Guard(true, h.HandleLike))
	mux.HandleFunc("POST /unlike", h.gate.Guard(true, h.HandleUnlike))
	mux.HandleFunc("GET /like/count/{id}", h.HandleLikeCount)
	mux.HandleFunc("GET /like/check/{id}", h.gate.Guard(true, h.HandleLikeCheck))
	mux.HandleFunc("GET /like/users/{id}", h.HandleLikers)
	mux.HandleFunc("POST /komentar", h.gate.Guard(true, h.HandleAddComment))
	mux.HandleFunc("GET /komentar/{id}", h.HandleListComments)
	mux.HandleFunc("GET /komentar/count/{id}", h.HandleCommentCount)
	mux.HandleFunc("PUT /komentar/{id}", h.gate.Guard(true, h.HandleUpdateComment))
	mux.HandleFunc("DELETE /komentar/{id}", h.gate.Guard(true, h.HandleDeleteComment))
	return mux
}

// callerAndPost resolves the caller and the puisi_id of a like/unlike body.
func callerAndPost(w http.ResponseWriter, r *http.Request) (models.Principal, int64, error) {
	caller, err := principal(r)
	if err != nil {
		return caller, 0, err
	}
	var req models.ReactionRequest
	if err := decode(w, r, &req); err != nil {
		return caller, 0, err
	}
	return caller, req.PostID, nil
}

func (h *ReactionHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	caller, postID, err := callerAndPost(w, r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	if err := h.reactions.Like(r.Context(), caller, postID); err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "liked"})
}

func (h *ReactionHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	caller, postID, err := callerAndPost(w, r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	if err := h.reactions.Unlike(r.Context(), caller, postID); err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "unliked"})
}

func (h *ReactionHandler) HandleLikeCount(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}
	n, err := h.reactions.LikeCount(r.Context(), postID)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *ReactionHandler) HandleLikeCheck(w http.ResponseWriter, r *http.Request) {
	caller, err := principal(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}
	liked, err := h.reactions.LikedBy(r.Context(), caller, postID)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.LikedResponse{Liked: liked})
}

func (h *ReactionHandler) HandleLikers(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}
	likes, err := h.reactions.Likers(r.Context(), postID)
	if err != nil {
		sendError(w, r, err)
		return
	}

	likers := make([]models.Liker, 0, len(likes))
	for _, l := range likes {
		likers = append(likers, models.Liker{UserID: l.UserID, UserName: l.UserName, CreatedAt: l.CreatedAt})
	}
	writeJSON(w, http.StatusOK, likers)
}

func (h *ReactionHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	caller, err := principal(r)
	if err != nil {
		sendError(w, r, err)
		return
	}
	var req models.CommentRequest
	if err := decode(w, r, &req); err != nil {
		sendError(w, r, err)
		return
	}

	c, err := h.reactions.Comment(r.Context(), caller, req.PostID, req.Body)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ReactionHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}
	list, err := h.reactions.ListComments(r.Context(), postID)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReactionHandler) HandleCommentCount(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		sendError(w, r, err)
		return
	}
	n, err := h.reactions.CommentCount(r.Context(), postID)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *ReactionHandler) HandleUpdateComment(w http.ResponseWriter, r *http.Request) {
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
	var req models.CommentRequest
	if err := decode(w, r, &req); err != nil {
		sendError(w, r, err)
		return
	}

	c, err := h.reactions.UpdateComment(r.Context(), caller, id, req.Body)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ReactionHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
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

	if err := h.reactions.DeleteComment(r.Context(), caller, id); err != nil {
		sendError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "comment deleted"})
}
