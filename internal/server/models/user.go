// Package models defines the server-side domain records: users, their public
// profile projection, and messages exchanged between them.
package models

import "time"

// User is the full identity record as stored in the users table.
// PasswordHash never leaves the credential layer: it carries a `json:"-"` tag
// and the service layer returns Profile projections instead.
type User struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	JoinedAt     time.Time  `json:"joined_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// Profile is the public projection of a user embedded in message payloads
// and user listings.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}
