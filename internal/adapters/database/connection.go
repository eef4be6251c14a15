package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatheractivity.app/internal/config"
	"weatheractivity.app/pkg/errors"
)

// Open connects to the SQL backend selected by cfg.Store and migrates the schema
func Open(cfg *config.FavoritesConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Store {
	case config.StoreTypePostgres:
		dialector = postgres.Open(cfg.Database.GetDSN())
	case config.StoreTypeSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, errors.NewConfigurationError("favorites store "+cfg.Store.String()+" is not backed by SQL", nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.NewDatabaseError("failed to connect to database", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables used by the favorites store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&FavoriteLocationModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate database", err)
	}
	return nil
}
