package external

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"weatheractivity.app/internal/config"
	"weatheractivity.app/pkg/errors"
)

// RedisFavoritesStore keeps favorites as a JSON array of strings under a single
// key, the same shape a browser keeps in local storage.
type RedisFavoritesStore struct {
	client *redis.Client
	key    string
}

// NewRedisFavoritesStore connects to Redis and verifies the connection
func NewRedisFavoritesStore(cfg *config.RedisConfig, key string) (*RedisFavoritesStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}
	if key == "" {
		return nil, errors.NewConfigurationError("favorites key cannot be empty", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewDatabaseError("failed to connect to Redis", err)
	}

	return &RedisFavoritesStore{
		client: client,
		key:    key,
	}, nil
}

// Load returns the stored list; a missing key is an empty list
func (s *RedisFavoritesStore) Load(ctx context.Context) ([]string, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []string{}, nil
		}
		return nil, errors.NewDatabaseError("redis get operation failed", err)
	}

	var locations []string
	if err := json.Unmarshal(raw, &locations); err != nil {
		return nil, errors.NewDatabaseError("stored favorites are not a JSON string array", err)
	}
	if locations == nil {
		locations = []string{}
	}
	return locations, nil
}

// Save rewrites the whole list
func (s *RedisFavoritesStore) Save(ctx context.Context, locations []string) error {
	if locations == nil {
		locations = []string{}
	}
	raw, err := json.Marshal(locations)
	if err != nil {
		return errors.NewDatabaseError("failed to encode favorites", err)
	}

	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return errors.NewDatabaseError("redis set operation failed", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (s *RedisFavoritesStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.NewDatabaseError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (s *RedisFavoritesStore) Close() error {
	if err := s.client.Close(); err != nil {
		return errors.NewDatabaseError("failed to close Redis connection", err)
	}
	return nil
}
