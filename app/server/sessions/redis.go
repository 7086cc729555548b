package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"minimalist-art-gallery/app/server/constants"
)

// RedisStore keeps sessions in Redis so they survive process restarts. Expiry
// is delegated to the key TTL.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Set(ctx context.Context, sid string, userID uint, ttl time.Duration) error {
	key := fmt.Sprintf(constants.CacheKeySession, sid)
	if err := s.rdb.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("set session key: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (uint, error) {
	key := fmt.Sprintf(constants.CacheKeySession, sid)
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, fmt.Errorf("get session key: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed session value %q: %w", val, err)
	}
	return uint(userID), nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	key := fmt.Sprintf(constants.CacheKeySession, sid)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete session key: %w", err)
	}
	return nil
}
