package messages

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, from, to, body string) (*models.Message, error)
	Get(ctx context.Context, id int64) (*models.MessageDetail, error)
	MarkRead(ctx context.Context, id int64) (*models.Message, error)
	ListFrom(ctx context.Context, username string) ([]models.SentMessage, error)
	ListTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)
}
