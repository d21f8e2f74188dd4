package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/save"
)

// ErrNotFound is returned when no save exists for a battle id.
var ErrNotFound = errors.New("battle save not found")

// SaveStore persists battle snapshots keyed by battle id.
type SaveStore interface {
	Save(ctx context.Context, battleID uuid.UUID, snapshot *save.Snapshot) error
	Load(ctx context.Context, battleID uuid.UUID) (*save.Snapshot, error)
	Delete(ctx context.Context, battleID uuid.UUID) error
	Close() error
}
