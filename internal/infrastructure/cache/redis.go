package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"eventpilot/internal/config"
	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const approvalKeyPrefix = "approval:"

// RedisSnapshotCache caches terminal approval snapshots so repeated loads
// of an already-responded public page skip DynamoDB.
type RedisSnapshotCache struct {
	client *redis.Client
	logger *zap.Logger
}

var _ interfaces.ISnapshotCache = (*RedisSnapshotCache)(nil)

func NewRedisSnapshotCache(cfg *config.Config, logger *zap.Logger) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("redis connected", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))
	return &RedisSnapshotCache{client: client, logger: logger}, nil
}

func (c *RedisSnapshotCache) GetApproval(ctx context.Context, token string) (entities.ApprovalRecord, bool, error) {
	raw, err := c.client.Get(ctx, approvalKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.ApprovalRecord{}, false, nil
	}
	if err != nil {
		return entities.ApprovalRecord{}, false, err
	}

	var rec entities.ApprovalRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return entities.ApprovalRecord{}, false, err
	}
	return rec, true, nil
}

func (c *RedisSnapshotCache) SetApproval(ctx context.Context, token string, rec entities.ApprovalRecord, ttl time.Duration) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, approvalKeyPrefix+token, raw, ttl).Err()
}

func (c *RedisSnapshotCache) InvalidateApproval(ctx context.Context, token string) error {
	return c.client.Del(ctx, approvalKeyPrefix+token).Err()
}
