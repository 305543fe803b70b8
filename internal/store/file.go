package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Antonov7512/drinkkiosk/internal/domain"
)

// FileStore is the local fallback when no store credential is configured.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(".data", "drinks-config.json")
	}
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (domain.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			def := domain.DefaultConfig()
			if err := s.write(def); err != nil {
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

func (s *FileStore) Save(_ context.Context, cfg domain.Config) error {
	return s.write(cfg)
}

func (s *FileStore) write(cfg domain.Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o644)
}

var _ CatalogStore = (*FileStore)(nil)
