// Package messages provides the PostgreSQL-backed repository for message
// persistence, including the profile-joined projections used by the API.
package messages

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

// pgForeignKeyViolation is the SQLSTATE for a foreign-key violation, raised
// when a message references a username that does not exist.
const pgForeignKeyViolation = "23503"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a message; id and sent_at are assigned by the store. An
// unknown sender or recipient surfaces as common.ErrNotFound.
func (r *PostgresRepository) Create(ctx context.Context, from, to, body string) (*models.Message, error) {

	query :=
		`INSERT INTO messages (from_username, to_username, body, sent_at)
         VALUES ($1, $2, $3, current_timestamp)
         RETURNING id, sent_at
         `

	m := &models.Message{FromUsername: from, ToUsername: to, Body: body}
	err := r.db.QueryRowContext(ctx, query, from, to, body).Scan(&m.ID, &m.SentAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

// Get returns the message with both endpoints' profiles embedded, so callers
// can authorize and render from a single lookup.
func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.MessageDetail, error) {
	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
                f.username, f.first_name, f.last_name, f.phone,
                t.username, t.first_name, t.last_name, t.phone
         FROM messages AS m
           JOIN users AS f ON f.username = m.from_username
           JOIN users AS t ON t.username = m.to_username
         WHERE m.id = $1
         `

	d := &models.MessageDetail{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Body, &d.SentAt, &d.ReadAt,
		&d.From.Username, &d.From.FirstName, &d.From.LastName, &d.From.Phone,
		&d.To.Username, &d.To.FirstName, &d.To.LastName, &d.To.Phone)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return d, nil
}

// MarkRead sets read_at once: the WHERE clause leaves an already-read row
// untouched, so repeated calls keep the first timestamp. The current row is
// returned either way.
func (r *PostgresRepository) MarkRead(ctx context.Context, id int64) (*models.Message, error) {

	update :=
		`UPDATE messages SET read_at = current_timestamp
         WHERE id = $1 AND read_at IS NULL
         `
	if _, err := r.db.ExecContext(ctx, update, id); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query :=
		`SELECT id, from_username, to_username, body, sent_at, read_at FROM messages
         WHERE id = $1
         `

	m := &models.Message{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.SentAt, &m.ReadAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

// ListFrom returns every message sent by username with the recipient's
// profile embedded, ordered by id for per-call determinism.
func (r *PostgresRepository) ListFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
                u.username, u.first_name, u.last_name, u.phone
         FROM messages AS m
           JOIN users AS u ON u.username = m.to_username
         WHERE m.from_username = $1
         ORDER BY m.id
         `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.SentMessage
	for rows.Next() {
		var item models.SentMessage
		if err := rows.Scan(
			&item.ID, &item.Body, &item.SentAt, &item.ReadAt,
			&item.To.Username, &item.To.FirstName, &item.To.LastName, &item.To.Phone,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListTo returns every message received by username with the sender's
// profile embedded, ordered by id.
func (r *PostgresRepository) ListTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	query :=
		`SELECT m.id, m.body, m.sent_at, m.read_at,
                u.username, u.first_name, u.last_name, u.phone
         FROM messages AS m
           JOIN users AS u ON u.username = m.from_username
         WHERE m.to_username = $1
         ORDER BY m.id
         `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.ReceivedMessage
	for rows.Next() {
		var item models.ReceivedMessage
		if err := rows.Scan(
			&item.ID, &item.Body, &item.SentAt, &item.ReadAt,
			&item.From.Username, &item.From.FirstName, &item.From.LastName, &item.From.Phone,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
