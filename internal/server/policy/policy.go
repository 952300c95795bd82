// Package policy holds the access-control decisions for messages and
// profiles. Every function is a pure predicate over an authenticated
// identity and a resource: no I/O, no clock, no side effects, so the rules
// are unit-testable without any HTTP or database machinery.
package policy

import "github.com/dmitrijs2005/messagely/internal/server/models"

// CanReadMessage reports whether identity may read m: only the sender and
// the recipient ever see a message.
func CanReadMessage(identity string, m *models.MessageDetail) bool {
	return identity == m.From.Username || identity == m.To.Username
}

// CanMarkRead reports whether identity may set the read timestamp on m:
// only the recipient.
func CanMarkRead(identity string, m *models.MessageDetail) bool {
	return identity == m.To.Username
}

// CanSendAs reports whether identity may create a message claiming from as
// its sender. The recipient is unrestricted.
func CanSendAs(identity, from string) bool {
	return identity == from
}

// CanAccessProfile reports whether identity may read or modify the profile
// owned by username.
func CanAccessProfile(identity, username string) bool {
	return identity == username
}
