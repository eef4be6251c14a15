package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weatheractivity.app/pkg/errors"
)

// FavoriteLocationModel represents one saved location. Position keeps the
// insertion order; ListKey allows several independent lists in one table.
type FavoriteLocationModel struct {
	ID        uint   `gorm:"primaryKey"`
	ListKey   string `gorm:"uniqueIndex:idx_favorite_list_name;not null"`
	Name      string `gorm:"uniqueIndex:idx_favorite_list_name;not null"`
	Position  int    `gorm:"not null"`
	CreatedAt time.Time
}

func (FavoriteLocationModel) TableName() string {
	return "favorite_locations"
}

// FavoritesRepositoryAdapter implements the FavoritesStore port using GORM
type FavoritesRepositoryAdapter struct {
	db  *gorm.DB
	key string
}

// NewFavoritesRepositoryAdapter creates a favorites store for the list named key
func NewFavoritesRepositoryAdapter(db *gorm.DB, key string) *FavoritesRepositoryAdapter {
	return &FavoritesRepositoryAdapter{db: db, key: key}
}

// Load returns the list ordered by position
func (r *FavoritesRepositoryAdapter) Load(ctx context.Context) ([]string, error) {
	var models []FavoriteLocationModel
	result := r.db.WithContext(ctx).
		Where("list_key = ?", r.key).
		Order("position asc").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to load favorites", result.Error)
	}

	locations := make([]string, 0, len(models))
	for _, m := range models {
		locations = append(locations, m.Name)
	}
	return locations, nil
}

// Save replaces the whole list in one transaction
func (r *FavoritesRepositoryAdapter) Save(ctx context.Context, locations []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_key = ?", r.key).Delete(&FavoriteLocationModel{}).Error; err != nil {
			return err
		}
		if len(locations) == 0 {
			return nil
		}

		models := make([]FavoriteLocationModel, 0, len(locations))
		for i, name := range locations {
			models = append(models, FavoriteLocationModel{
				ListKey:  r.key,
				Name:     name,
				Position: i,
			})
		}
		return tx.Create(&models).Error
	})
	if err != nil {
		return errors.NewDatabaseError("failed to save favorites", err)
	}
	return nil
}

// Ping checks the underlying connection
func (r *FavoritesRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get database connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}
