package storage

import (
	"context"

	"csdoc/internal/generator"
)

// CatalogStore persists the assembled documentation items between runs.
type CatalogStore interface {
	// SaveItems replaces the stored snapshot with items.
	SaveItems(ctx context.Context, items []generator.Item) error

	// LoadItems returns the stored items sorted by title.
	LoadItems(ctx context.Context) ([]generator.Item, error)

	Close() error
}
