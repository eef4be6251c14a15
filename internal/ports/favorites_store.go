package ports

import "context"

// FavoritesStore persists the ordered list of favorite location names.
// Save replaces the whole list.
type FavoritesStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, locations []string) error
}
