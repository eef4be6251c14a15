package external

import (
	"fmt"

	"weatheractivity.app/internal/config"
	"weatheractivity.app/internal/ports"
	"weatheractivity.app/pkg/errors"
)

// FavoritesStoreFactory builds the key-value favorites stores. SQL-backed stores
// live in the database adapter.
type FavoritesStoreFactory struct{}

func NewFavoritesStoreFactory() *FavoritesStoreFactory {
	return &FavoritesStoreFactory{}
}

func (f *FavoritesStoreFactory) CreateFavoritesStore(cfg *config.FavoritesConfig) (ports.FavoritesStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("favorites config cannot be nil", nil)
	}

	switch cfg.Store {
	case config.StoreTypeMemory:
		return NewMemoryFavoritesStore(), nil
	case config.StoreTypeRedis:
		store, err := NewRedisFavoritesStore(&cfg.Redis, cfg.Key)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported favorites store: %s", cfg.Store.String()), nil)
	}
}
