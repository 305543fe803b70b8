// Package store persists the configuration aggregate as a single JSON
// document: whole-document reads and unconditional overwrites, last writer
// wins. There are no partial updates and no conflict detection.
package store

import (
	"context"

	"github.com/Antonov7512/drinkkiosk/internal/domain"
)

// CatalogStore is the durable holder of the full configuration object.
// Load returns the default document when none exists yet, initializing one
// on first load. Save is an idempotent overwrite.
type CatalogStore interface {
	Load(ctx context.Context) (domain.Config, error)
	Save(ctx context.Context, cfg domain.Config) error
}

// configKey is the well-known location of the document in keyed backends.
const configKey = "config:drinks-config"
