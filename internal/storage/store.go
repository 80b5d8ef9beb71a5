// Package storage persists run summaries.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"roomba/internal/sims/roomba"
)

// ErrDuplicateRun is returned when a run id was already saved. Stores are
// append-only.
var ErrDuplicateRun = errors.New("run already stored")

// Store keeps the summaries of finished runs in insertion order.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, s roomba.Summary) error
	GetRun(ctx context.Context, id uuid.UUID) (roomba.Summary, bool, error)
	ListRuns(ctx context.Context) ([]roomba.Summary, error)
	Close() error
}

// NewStore builds a store backend by name.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// Sink saves every finished run into a store.
type Sink struct {
	Store Store
}

// Write saves s.
func (k Sink) Write(ctx context.Context, s roomba.Summary, _ []roomba.Snapshot) error {
	if err := k.Store.SaveRun(ctx, s); err != nil {
		return fmt.Errorf("save run %s: %w", s.RunID, err)
	}
	return nil
}
