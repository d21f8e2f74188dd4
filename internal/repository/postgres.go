package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/save"
)

const battleSavesSchema = `
CREATE TABLE IF NOT EXISTS battle_saves (
    battle_id  UUID PRIMARY KEY,
    version    INT NOT NULL,
    checksum   TEXT NOT NULL,
    payload    BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore persists snapshots in a battle_saves table.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresStore connects a pool and ensures the schema exists.
func NewPostgresStore(ctx context.Context, url string, logger *zap.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, battleSavesSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure battle_saves schema: %w", err)
	}
	logger.Info("postgres save store initialized")
	return &PostgresStore{pool: pool, logger: logger}, nil
}

// Save upserts a snapshot, storing its checksum alongside the payload.
func (s *PostgresStore) Save(ctx context.Context, battleID uuid.UUID, snapshot *save.Snapshot) error {
	payload, err := snapshot.Encode()
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO battle_saves (battle_id, version, checksum, payload, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (battle_id) DO UPDATE
		SET version = $2, checksum = $3, payload = $4, updated_at = now()`,
		battleID, snapshot.Version, snapshot.Checksum(), payload)
	if err != nil {
		return fmt.Errorf("save battle %s: %w", battleID, err)
	}
	s.logger.Debug("battle saved", zap.String("battle_id", battleID.String()))
	return nil
}

// Load reads a snapshot and verifies the stored checksum.
func (s *PostgresStore) Load(ctx context.Context, battleID uuid.UUID) (*save.Snapshot, error) {
	var checksum string
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT checksum, payload FROM battle_saves WHERE battle_id = $1`,
		battleID).Scan(&checksum, &payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load battle %s: %w", battleID, err)
	}
	snapshot, err := save.Decode(payload)
	if err != nil {
		return nil, err
	}
	if computed := snapshot.Checksum(); computed != checksum {
		return nil, fmt.Errorf("battle %s checksum mismatch: stored %s, computed %s",
			battleID, checksum, computed)
	}
	return snapshot, nil
}

// Delete removes a save.
func (s *PostgresStore) Delete(ctx context.Context, battleID uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM battle_saves WHERE battle_id = $1`, battleID)
	if err != nil {
		return fmt.Errorf("delete battle %s: %w", battleID, err)
	}
	return nil
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
