package schemes

import (
	"context"

	"github.com/dmitrijs2005/narvi/internal/scheme"
)

type Repository interface {
	SaveHashScheme(ctx context.Context, s scheme.HashScheme) error
	SaveWordScheme(ctx context.Context, s scheme.WordScheme) error
	ListHashSchemes(ctx context.Context) ([]scheme.HashScheme, error)
	ListWordSchemes(ctx context.Context) ([]scheme.WordScheme, error)
	DeleteHashScheme(ctx context.Context, id string) error
	DeleteWordScheme(ctx context.Context, id string) error
}
