package api

import "time"

// Profile is the public projection of a user as the server returns it.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// User is the full account record the server returns for the profile owner.
type User struct {
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	JoinedAt    time.Time  `json:"joined_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Message is a created message as returned by the send endpoint.
type Message struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
}

// MessageDetail is a message with both endpoint profiles resolved.
type MessageDetail struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at,omitempty"`
	From   Profile    `json:"from_user"`
	To     Profile    `json:"to_user"`
}

// SentMessage is a listing row for messages the user sent.
type SentMessage struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at,omitempty"`
	To     Profile    `json:"to_user"`
}

// ReceivedMessage is a listing row for messages the user received.
type ReceivedMessage struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at,omitempty"`
	From   Profile    `json:"from_user"`
}

// ReadReceipt is the confirmation returned when a message is marked read.
type ReadReceipt struct {
	ID     int64      `json:"id"`
	ReadAt *time.Time `json:"read_at"`
}
