package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
)

// MessageService provides message operations. Authorization stays out of
// this layer: callers consult the policy package against the records
// returned here.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMessageService constructs a MessageService using repositories.
func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Send persists a message from one user to another; the store assigns id and
// sent_at. An unknown recipient yields common.ErrNotFound.
func (s *MessageService) Send(ctx context.Context, from, to, body string) (*models.Message, error) {
	repo := s.repomanager.Messages(s.db)
	m, err := repo.Create(ctx, from, to, body)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return m, nil
}

// Get returns the message with both endpoints' profiles embedded.
func (s *MessageService) Get(ctx context.Context, id int64) (*models.MessageDetail, error) {
	repo := s.repomanager.Messages(s.db)
	d, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return d, nil
}

// MarkRead sets the read timestamp if it is unset and returns the current
// row. Re-marking an already-read message is a no-op, not an error. The
// update and the re-read run in one transaction so the returned row always
// reflects the timestamp the caller's mark produced.
func (s *MessageService) MarkRead(ctx context.Context, id int64) (*models.Message, error) {
	var m *models.Message

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Messages(tx)
		res, err := repo.MarkRead(ctx, id)
		if err != nil {
			return err
		}
		m = res
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return m, nil
}

// ListFrom returns all messages sent by username, each with the recipient's
// profile embedded.
func (s *MessageService) ListFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	repo := s.repomanager.Messages(s.db)
	result, err := repo.ListFrom(ctx, username)
	if err != nil {
		return nil, common.ErrInternal
	}
	return result, nil
}

// ListTo returns all messages received by username, each with the sender's
// profile embedded.
func (s *MessageService) ListTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	repo := s.repomanager.Messages(s.db)
	result, err := repo.ListTo(ctx, username)
	if err != nil {
		return nil, common.ErrInternal
	}
	return result, nil
}
