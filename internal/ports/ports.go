package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	ForecastProvider ForecastProvider
	LookupMetrics    LookupMetrics

	// Favorites & position
	FavoritesStore FavoritesStore
	PositionSource PositionSource

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
}
