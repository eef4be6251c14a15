package infrastructure

import (
	"context"

	"weatheractivity.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Pinger is implemented by favorites stores that can verify their backend
type Pinger interface {
	Ping(ctx context.Context) error
}

// FavoritesStoreHealthChecker verifies the favorites backend is reachable
type FavoritesStoreHealthChecker struct {
	store     Pinger
	storeType string
}

// NewFavoritesStoreHealthChecker creates a new favorites store health checker
func NewFavoritesStoreHealthChecker(store Pinger, storeType string) *FavoritesStoreHealthChecker {
	return &FavoritesStoreHealthChecker{store: store, storeType: storeType}
}

// Check pings the store
func (f *FavoritesStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "favorites",
		Details: map[string]interface{}{
			"store": f.storeType,
		},
	}

	if f.store == nil {
		status.Status = statusUnhealthy
		status.Error = "favorites store is not available"
		return status
	}

	if err := f.store.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	status.Details["connected"] = true
	return status
}

// WeatherAPIHealthChecker reports whether lookups can reach the provider.
// It makes no outbound call.
type WeatherAPIHealthChecker struct {
	provider ports.ForecastProvider
	config   ports.ConfigProvider
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(provider ports.ForecastProvider, config ports.ConfigProvider) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{provider: provider, config: config}
}

// Check verifies a provider is wired and its credential is configured
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}

	if w.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}
	status.Details["provider"] = w.provider.GetProviderName()

	weatherConfig := w.config.GetWeatherConfig()
	status.Details["apiKeyConfigured"] = weatherConfig.APIKeyConfigured
	if !weatherConfig.APIKeyConfigured {
		status.Status = statusUnhealthy
		status.Error = "Weather API key is not configured"
	}

	return status
}
