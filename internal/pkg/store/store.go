package store

import (
	"context"

	"github.com/endeavored/classwatch/internal/pkg/models"
)

// WatchStore holds the single watch list.
type WatchStore interface {
	Load(ctx context.Context) (models.WatchList, error)
	// Update applies fn to the current list and persists the result unless fn fails.
	Update(ctx context.Context, fn func(*models.WatchList) error) (models.WatchList, error)
	Close(ctx context.Context) error
}
