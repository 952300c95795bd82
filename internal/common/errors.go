// Package common defines shared constants and sentinel errors used across
// client and server layers of Messagely. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrDuplicateUser = errors.New("username already taken")

	// Service-level errors (generic/internal flow control).
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid username/password")

	// Validation errors (malformed or missing input).
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrUnauthenticated means no usable identity was
	// presented; ErrForbidden means the identity is valid but the policy
	// denies the operation.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
