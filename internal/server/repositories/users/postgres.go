// Package users provides the PostgreSQL-backed repository for identity
// records: creation, lookup, profile listings, and login timestamps.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for a unique-constraint violation.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user row. The username is the primary key; a
// conflicting insert returns common.ErrDuplicateUser and leaves the first
// record untouched.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, password_hash, first_name, last_name, phone, joined_at)
         VALUES ($1, $2, $3, $4, $5, current_timestamp)
         RETURNING joined_at
         `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Phone).Scan(&user.JoinedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrDuplicateUser
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// GetByUsername returns the full user row, password hash included. The hash
// stays inside the credential layer; callers expose models.Profile instead.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT username, password_hash, first_name, last_name, phone, joined_at, last_login_at FROM users
         WHERE username = $1
         `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Phone, &user.JoinedAt, &user.LastLoginAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// ListProfiles returns the public projection of every user, ordered by last
// then first name.
func (r *PostgresRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	query :=
		`SELECT username, first_name, last_name, phone FROM users
         ORDER BY last_name, first_name
         `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.Username, &p.FirstName, &p.LastName, &p.Phone); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// TouchLogin sets last_login_at to the current time. Updating a missing user
// returns common.ErrNotFound.
func (r *PostgresRepository) TouchLogin(ctx context.Context, username string) error {
	query :=
		`UPDATE users SET last_login_at = current_timestamp
         WHERE username = $1
         `

	res, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
