package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Antonov7512/drinkkiosk/config"
	"github.com/Antonov7512/drinkkiosk/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the whole document as a JSON blob under one key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *RedisStore) Load(ctx context.Context) (domain.Config, error) {
	data, err := s.client.Get(ctx, configKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			def := domain.DefaultConfig()
			if err := s.Save(ctx, def); err != nil {
				return domain.Config{}, err
			}
			return def, nil
		}
		return domain.Config{}, fmt.Errorf("load config: %w", err)
	}

	var cfg domain.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg.Normalize(), nil
}

func (s *RedisStore) Save(ctx context.Context, cfg domain.Config) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, configKey, payload, 0).Err()
}

var _ CatalogStore = (*RedisStore)(nil)
