package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"weatheractivity.app/internal/adapters/database"
	"weatheractivity.app/internal/adapters/external"
	"weatheractivity.app/internal/adapters/infrastructure"
	"weatheractivity.app/internal/config"
	"weatheractivity.app/internal/ports"
	"weatheractivity.app/pkg/logger"
)

type DependencyContainer struct {
	config  *config.Config
	db      *gorm.DB
	ports   *ports.ApplicationPorts
	metrics *infrastructure.MetricsCollectorAdapter
	closers []io.Closer
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeLogger() ports.Logger {
	logger.SetDefault(c.config.Logging.Level)
	var appLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	weatherCfg := c.config.Weather
	if weatherCfg.EnableLogging && weatherCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath, logger.ParseLevel(c.config.Logging.Level))
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.closers = append(c.closers, fileLogger)
			appLogger = infrastructure.TeeLogger{appLogger, fileLogger}
			slog.Info("File logging enabled", "path", weatherCfg.LogFilePath)
		}
	}

	return appLogger
}

func (c *DependencyContainer) initializeFavoritesStore() (ports.FavoritesStore, error) {
	favoritesCfg := &c.config.Favorites

	if favoritesCfg.Store.IsSQL() {
		slog.Info("Initializing database connection...", "store", favoritesCfg.Store.String())
		db, err := database.Open(favoritesCfg)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		c.db = db

		slog.Info("Database connection established successfully")
		return database.NewFavoritesRepositoryAdapter(db, favoritesCfg.Key), nil
	}

	store, err := external.NewFavoritesStoreFactory().CreateFavoritesStore(favoritesCfg)
	if err != nil {
		return nil, fmt.Errorf("create favorites store: %w", err)
	}
	if closer, ok := store.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	slog.Info("Favorites store initialized",
		"type", favoritesCfg.Store.String(),
		"key", favoritesCfg.Key)
	return store, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	appLogger := c.initializeLogger()

	favoritesStore, err := c.initializeFavoritesStore()
	if err != nil {
		return err
	}

	c.metrics = infrastructure.NewMetricsCollectorAdapter()

	var provider ports.ForecastProvider = external.NewWeatherAPIProviderAdapter(external.WeatherAPIProviderParams{
		APIKey:  c.config.Weather.APIKey,
		BaseURL: c.config.Weather.BaseURL,
		Timeout: time.Duration(c.config.Weather.HTTPTimeoutSeconds) * time.Second,
		Logger:  appLogger,
	})
	provider = external.NewForecastProviderMetricsDecorator(provider, c.metrics)

	if c.config.Weather.EnableLogging {
		provider = external.NewForecastProviderLoggingDecorator(provider, appLogger)
		slog.Info("Weather provider logging enabled")
	}

	if !c.config.Weather.APIKeyConfigured() {
		slog.Warn("WEATHER_API_KEY is not set; lookups will fail until it is configured")
	}

	c.ports = &ports.ApplicationPorts{
		ForecastProvider: provider,
		LookupMetrics:    c.metrics,

		FavoritesStore: favoritesStore,
		PositionSource: infrastructure.NewStaticPositionSource(c.config.Geolocation),

		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         appLogger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsCollector returns the collector backing both /metrics and /api/metrics
func (c *DependencyContainer) MetricsCollector() *infrastructure.MetricsCollectorAdapter {
	return c.metrics
}

// Cleanup releases the database pool, the Redis client and the log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				firstErr = err
			}
		}
		c.db = nil
	}

	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	return firstErr
}
