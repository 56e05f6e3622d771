package salts

import (
	"context"

	"github.com/dmitrijs2005/narvi/internal/models"
)

type Repository interface {
	Get(ctx context.Context, value string) (models.Salt, error)
	Save(ctx context.Context, salt models.Salt) error
	Delete(ctx context.Context, value string) error
	List(ctx context.Context) ([]models.Salt, error)
}
