// Package auth implements the two credential primitives of the server:
// session-token issuance/verification (HS256 JWTs) and password hashing
// (bcrypt). Both take their secrets and work factors as constructor
// arguments so they can be tested with fixture values.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the registered claims plus the authenticated
// username. Claims are readable by anyone holding the token; only forgery is
// prevented.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// TokenManager issues and verifies session tokens bound to a process-wide
// secret. The secret is loaded once at startup and never derived from
// request data.
type TokenManager struct {
	secretKey        []byte
	validityDuration time.Duration
}

// NewTokenManager constructs a TokenManager with the given HMAC secret and
// token lifetime.
func NewTokenManager(secretKey []byte, validityDuration time.Duration) *TokenManager {
	return &TokenManager{secretKey: secretKey, validityDuration: validityDuration}
}

// Issue produces a compact signed token claiming the given username.
func (m *TokenManager) Issue(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validityDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify validates the signature and staleness of tokenString and returns
// the username it claims. Structural corruption, a signature mismatch, or an
// unexpected signing method all yield common.ErrInvalidToken; an expired
// token yields common.ErrTokenExpired.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Username == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Username, nil
}
