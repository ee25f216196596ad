package port

import (
	"context"

	"movierec/internal/domain"
)

// RowSource supplies the raw review rows a corpus is built from.
type RowSource interface {
	Load(ctx context.Context) ([]domain.RawRow, error)
}
