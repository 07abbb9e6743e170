package models

import "time"

// Request and response bodies of the JSON API. Server handlers and the Go
// client share them.

type CredentialsRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  Principal `json:"user"`
}

type ValidateTokenResponse struct {
	Valid bool      `json:"valid"`
	User  Principal `json:"user"`
}

// PostRequest is the body of create and update. IsPublic is optional.
type PostRequest struct {
	Title    string `json:"judul"`
	Body     string `json:"isi"`
	IsPublic *bool  `json:"is_public,omitempty"`
}

type ReactionRequest struct {
	PostID int64 `json:"puisi_id"`
}

type CommentRequest struct {
	PostID int64  `json:"puisi_id,omitempty"`
	Body   string `json:"isi"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}

// Liker is one entry of the likers list of a post.
type Liker struct {
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
