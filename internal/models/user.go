package models

import "time"

// User is an account row in Postgres. Only the identity fields live here;
// all health data hangs off UserID in the profile and report stores.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}
