package credentials

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
)

type Repository interface {
	Get(ctx context.Context, name, path string) (*models.Credential, error)
	Set(ctx context.Context, c models.Credential) error
	Delete(ctx context.Context, name, path string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
