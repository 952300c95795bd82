package models

import "time"

// Message is a directed communication between two users. ReadAt stays nil
// until the recipient marks the message read; once set it never changes.
type Message struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
}

// MessageDetail is a message with both endpoints' profiles resolved, so the
// policy layer and clients can work from a single lookup.
type MessageDetail struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at,omitempty"`
	From   Profile    `json:"from_user"`
	To     Profile    `json:"to_user"`
}

// SentMessage is a listing row for messages a user sent; only the recipient's
// profile is embedded.
type SentMessage struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at,omitempty"`
	To     Profile    `json:"to_user"`
}

// ReceivedMessage is a listing row for messages a user received; only the
// sender's profile is embedded.
type ReceivedMessage struct {
	ID     int64      `json:"id"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at,omitempty"`
	From   Profile    `json:"from_user"`
}
