package repository

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase/interfaces"
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// redisKV is the subset of the go-redis client the repository needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisSlotRepository stores each slot as a plain string key "<prefix><slot>" with no expiry.
type RedisSlotRepository struct {
	rdb    redisKV
	prefix string
}

var _ interfaces.ISlotRepository = (*RedisSlotRepository)(nil)

func NewRedisSlotRepository(rdb *redis.Client, prefix string) *RedisSlotRepository {
	return &RedisSlotRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisSlotRepository) Load(ctx context.Context, slot entities.Slot) ([]byte, bool, error) {
	if err := checkSlot(slot); err != nil {
		return nil, false, err
	}
	payload, err := r.rdb.Get(ctx, slotKey(r.prefix, slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (r *RedisSlotRepository) Save(ctx context.Context, slot entities.Slot, payload []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	return r.rdb.Set(ctx, slotKey(r.prefix, slot), payload, 0).Err()
}
