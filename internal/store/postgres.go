package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Antonov7512/drinkkiosk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore holds the document in a one-row table. The aggregate is stored
// wholesale; there is nothing relational about it on purpose.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// Init creates the document table if missing.
func (s *PGStore) Init(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS kiosk_config (
		id text PRIMARY KEY,
		doc jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`)
	return err
}

func (s *PGStore) Load(ctx context.Context) (domain.Config, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT doc FROM kiosk_config WHERE id=$1`, configKey).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

func (s *PGStore) Save(ctx context.Context, cfg domain.Config) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `INSERT INTO kiosk_config (id, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`, configKey, payload)
	return err
}

var _ CatalogStore = (*PGStore)(nil)
