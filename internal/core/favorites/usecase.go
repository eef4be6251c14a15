// Package favorites keeps the ordered list of saved locations.
package favorites

import (
	"context"
	"sync"

	"weatheractivity.app/internal/ports"
	"weatheractivity.app/pkg/errors"
	"weatheractivity.app/pkg/validation"
)

// UseCase manages favorite locations on top of a FavoritesStore. The list is
// read and rewritten as a whole on every change.
type UseCase struct {
	store  ports.FavoritesStore
	logger ports.Logger

	// serializes read-modify-write cycles within this process
	mu sync.Mutex
}

type UseCaseDependencies struct {
	Store  ports.FavoritesStore
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("favorites store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		store:  deps.Store,
		logger: deps.Logger,
	}, nil
}

// List returns the saved locations in insertion order
func (uc *UseCase) List(ctx context.Context) ([]string, error) {
	locations, err := uc.store.Load(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load favorites", err)
	}
	if locations == nil {
		locations = []string{}
	}
	return locations, nil
}

// Add appends a location unless it is blank or already saved, and returns the
// resulting list.
func (uc *UseCase) Add(ctx context.Context, location string) ([]string, error) {
	name, ok := validation.TrimAndValidate(location)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	locations, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || indexOf(locations, name) >= 0 {
		return locations, nil
	}

	locations = append(locations, name)
	if err := uc.store.Save(ctx, locations); err != nil {
		return nil, errors.NewDatabaseError("failed to save favorites", err)
	}

	uc.logger.Info("Favorite location added", ports.F("location", name), ports.F("count", len(locations)))
	return locations, nil
}

// Remove drops a location and returns the resulting list. Removing an unknown
// location leaves the list unchanged.
func (uc *UseCase) Remove(ctx context.Context, location string) ([]string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	locations, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(locations))
	for _, l := range locations {
		if l != location {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(locations) {
		return locations, nil
	}

	if err := uc.store.Save(ctx, kept); err != nil {
		return nil, errors.NewDatabaseError("failed to save favorites", err)
	}

	uc.logger.Info("Favorite location removed", ports.F("location", location), ports.F("count", len(kept)))
	return kept, nil
}

// Contains reports whether location is saved
func (uc *UseCase) Contains(ctx context.Context, location string) (bool, error) {
	locations, err := uc.List(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(locations, location) >= 0, nil
}

func indexOf(locations []string, location string) int {
	for i, l := range locations {
		if l == location {
			return i
		}
	}
	return -1
}
