// Package models defines the records persisted by the puisi services and
// the identity carried through requests.
package models

import "time"

// User is a registered account. PasswordHash never leaves the auth service
// and is excluded from JSON.
type User struct {
	ID           int64     `json:"id"`
	UserName     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the verified identity extracted from a bearer token.
type Principal struct {
	ID       int64  `json:"id"`
	UserName string `json:"username"`
}
