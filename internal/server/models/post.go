package models

import "time"

// Post is a poem. UserName is copied from the auth service when the post
// is created and is not kept in sync afterwards.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"username"`
	Title     string    `json:"judul"`
	Body      string    `json:"isi"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
}
