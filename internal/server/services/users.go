// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential verification, and
// issuing session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users and log them in
// - Authenticate: verify credentials, failing closed
// - Login: verify credentials and mint a session token
// - GetUser / ListProfiles: profile reads
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenManager
	logger      logging.Logger
}

// NewUserService constructs a UserService. The hasher and token manager are
// built once at startup from config and shared with the HTTP layer.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher *auth.PasswordHasher, tokens *auth.TokenManager, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger.With("module", "user_service"),
	}
}

// Register creates a new user with a freshly hashed password and immediately
// logs them in, returning the created record and a session token. A taken
// username yields common.ErrDuplicateUser.
func (s *UserService) Register(ctx context.Context, username, rawPassword, firstName, lastName, phone string) (*models.User, string, error) {
	digest, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: digest,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			return nil, "", common.ErrDuplicateUser
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.finishLogin(ctx, username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate reports whether the username/password pair is valid. It fails
// closed: unknown usernames return false, and that path still burns a hash
// comparison so its timing matches the wrong-password path.
func (s *UserService) Authenticate(ctx context.Context, username, rawPassword string) (bool, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.DummyVerify(rawPassword)
			return false, nil
		}
		return false, common.ErrInternal
	}
	return s.hasher.Verify(rawPassword, user.PasswordHash), nil
}

// Login verifies the credentials and, on success, returns a fresh session
// token. Bad credentials yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	ok, err := s.Authenticate(ctx, username, rawPassword)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}
	return s.finishLogin(ctx, username)
}

// GetUser returns the identity record for username with the password hash
// stripped. Unknown usernames yield common.ErrNotFound.
func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	user.PasswordHash = ""
	return user, nil
}

// ListProfiles returns the public projection of every registered user.
func (s *UserService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	repo := s.repomanager.Users(s.db)
	profiles, err := repo.ListProfiles(ctx)
	if err != nil {
		return nil, common.ErrInternal
	}
	return profiles, nil
}

// finishLogin updates last_login_at best-effort and issues a session token.
// A failed timestamp update is logged and must not block token issuance.
func (s *UserService) finishLogin(ctx context.Context, username string) (string, error) {
	repo := s.repomanager.Users(s.db)
	if err := repo.TouchLogin(ctx, username); err != nil {
		s.logger.Warn(ctx, "failed to update last_login_at", "username", username, "error", err.Error())
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}
