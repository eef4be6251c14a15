package ports

import "time"

// WeatherConfig represents weather gateway configuration
type WeatherConfig struct {
	APIKeyConfigured bool
	BaseURL          string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// FavoritesConfig represents favorites storage configuration
type FavoritesConfig struct {
	Store string
	Key   string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetFavoritesConfig() FavoritesConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LookupMetrics records the outcome of gateway lookups
type LookupMetrics interface {
	RecordLookup(kind, outcome string, duration time.Duration)
	RecordProviderCall(provider string, success bool, duration time.Duration)
}
