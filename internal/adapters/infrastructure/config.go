package infrastructure

import (
	"weatheractivity.app/internal/config"
	"weatheractivity.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns weather configuration. The key itself stays in the adapter layer.
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		APIKeyConfigured: c.config.Weather.APIKeyConfigured(),
		BaseURL:          c.config.Weather.BaseURL,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetFavoritesConfig returns favorites storage configuration
func (c *ConfigProviderAdapter) GetFavoritesConfig() ports.FavoritesConfig {
	return ports.FavoritesConfig{
		Store: c.config.Favorites.Store.String(),
		Key:   c.config.Favorites.Key,
	}
}
