package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/save"
)

// RedisStore persists snapshots as TTL-bounded keys, suited to in-progress
// battles that expire if abandoned.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore connects a client and verifies the server is reachable.
func NewRedisStore(ctx context.Context, addr string, ttl time.Duration, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.Info("redis save store initialized", zap.String("addr", addr))
	return &RedisStore{client: client, ttl: ttl, logger: logger}, nil
}

func saveKey(battleID uuid.UUID) string {
	return "battle:save:" + battleID.String()
}

// Save writes the encoded snapshot with the store's TTL.
func (s *RedisStore) Save(ctx context.Context, battleID uuid.UUID, snapshot *save.Snapshot) error {
	payload, err := snapshot.Encode()
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, saveKey(battleID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save battle %s: %w", battleID, err)
	}
	s.logger.Debug("battle saved", zap.String("battle_id", battleID.String()))
	return nil
}

// Load reads and decodes a snapshot.
func (s *RedisStore) Load(ctx context.Context, battleID uuid.UUID) (*save.Snapshot, error) {
	payload, err := s.client.Get(ctx, saveKey(battleID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load battle %s: %w", battleID, err)
	}
	return save.Decode(payload)
}

// Delete removes a save.
func (s *RedisStore) Delete(ctx context.Context, battleID uuid.UUID) error {
	if err := s.client.Del(ctx, saveKey(battleID)).Err(); err != nil {
		return fmt.Errorf("delete battle %s: %w", battleID, err)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
