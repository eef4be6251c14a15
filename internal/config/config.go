package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatheractivity.app/pkg/errors"
	"weatheractivity.app/pkg/validation"
)

const (
	maxRedisDB            = 15
	maxPortNumber         = 65535
	maxHTTPTimeoutSeconds = 300
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Weather     WeatherConfig     `split_words:"true"`
	Favorites   FavoritesConfig   `split_words:"true"`
	Geolocation GeolocationConfig `split_words:"true"`
	Logging     LoggingConfig     `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// WeatherConfig configures the forecast provider. An empty APIKey is accepted at
// startup; lookups then fail with a configuration error.
type WeatherConfig struct {
	APIKey             string `envconfig:"WEATHER_API_KEY"`
	BaseURL            string `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	HTTPTimeoutSeconds int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	EnableLogging      bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath        string `envconfig:"WEATHER_LOG_FILE_PATH"`
}

// StoreType represents the backend used to persist favorite locations
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeSQLite
	StoreTypePostgres
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeSQLite:
		return "sqlite"
	case StoreTypePostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s >= StoreTypeMemory && s <= StoreTypePostgres
}

// IsSQL reports whether the store is backed by gorm
func (s StoreType) IsSQL() bool {
	return s == StoreTypeSQLite || s == StoreTypePostgres
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "sqlite":
		return StoreTypeSQLite
	case "postgres":
		return StoreTypePostgres
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type FavoritesConfig struct {
	Store      StoreType      `envconfig:"FAVORITES_STORE" default:"memory"`
	Key        string         `envconfig:"FAVORITES_KEY" default:"favoriteLocations"`
	SQLitePath string         `envconfig:"FAVORITES_SQLITE_PATH" default:"favorites.db"`
	Database   DatabaseConfig `split_words:"true"`
	Redis      RedisConfig    `split_words:"true"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatheractivity"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// GeolocationConfig holds the fixed position reported to "use my location" lookups.
// Both values empty means geolocation is unsupported.
type GeolocationConfig struct {
	Latitude  string `envconfig:"GEO_LATITUDE"`
	Longitude string `envconfig:"GEO_LONGITUDE"`
}

// Enabled reports whether a position is configured
func (g GeolocationConfig) Enabled() bool {
	return validation.IsNotEmpty(g.Latitude) && validation.IsNotEmpty(g.Longitude)
}

type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Favorites.Validate(); err != nil {
		return err
	}
	if err := c.Geolocation.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 300", nil)
	}
	return nil
}

// APIKeyConfigured reports whether lookups can reach the provider
func (w *WeatherConfig) APIKeyConfigured() bool {
	return strings.TrimSpace(w.APIKey) != ""
}

func (f *FavoritesConfig) Validate() error {
	if !f.Store.IsValid() {
		return errors.NewConfigurationError("FAVORITES_STORE must be one of: memory, redis, sqlite, postgres", nil)
	}
	if strings.TrimSpace(f.Key) == "" {
		return errors.NewConfigurationError("FAVORITES_KEY cannot be empty", nil)
	}

	switch f.Store {
	case StoreTypeRedis:
		return f.Redis.Validate()
	case StoreTypePostgres:
		return f.Database.Validate()
	case StoreTypeSQLite:
		if strings.TrimSpace(f.SQLitePath) == "" {
			return errors.NewConfigurationError("FAVORITES_SQLITE_PATH cannot be empty when using sqlite store", nil)
		}
	}

	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (g *GeolocationConfig) Validate() error {
	latSet := validation.IsNotEmpty(g.Latitude)
	lonSet := validation.IsNotEmpty(g.Longitude)
	if latSet != lonSet {
		return errors.NewConfigurationError("GEO_LATITUDE and GEO_LONGITUDE must both be provided or both be empty", nil)
	}
	if !latSet {
		return nil
	}
	if _, ok := validation.ParseCoordinate(g.Latitude); !ok {
		return errors.NewConfigurationError("GEO_LATITUDE must be a decimal number", nil)
	}
	if _, ok := validation.ParseCoordinate(g.Longitude); !ok {
		return errors.NewConfigurationError("GEO_LONGITUDE must be a decimal number", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}
