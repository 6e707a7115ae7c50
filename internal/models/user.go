package models

import "time"

// User represents a registered account. The password hash never leaves the
// service layer; it is excluded from every serialized form.
type User struct {
	ID           int       `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
