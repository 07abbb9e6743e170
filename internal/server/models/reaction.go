package models

import "time"

// Like is unique per (UserID, PostID).
type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"username"`
	PostID    int64     `json:"puisi_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is owned by its author (UserID).
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"username"`
	PostID    int64     `json:"puisi_id"`
	Body      string    `json:"isi"`
	CreatedAt time.Time `json:"created_at"`
}

// Count is the reply shape of the like and comment counters.
type Count struct {
	PostID int64 `json:"puisi_id"`
	Total  int64 `json:"total"`
}
