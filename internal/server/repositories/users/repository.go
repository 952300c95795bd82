package users

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	TouchLogin(ctx context.Context, username string) error
}
