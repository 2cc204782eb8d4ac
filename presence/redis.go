package presence

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const onlineKey = "presence:online"

// redisStore keeps presence in a Redis hash of name → level.
type redisStore struct {
	rdb *redis.Client
}

func newRedisStore(cfg Config) (*redisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &redisStore{rdb: rdb}, nil
}

func (s *redisStore) Set(ctx context.Context, name string, level int) error {
	return s.rdb.HSet(ctx, onlineKey, name, strconv.Itoa(level)).Err()
}

func (s *redisStore) Remove(ctx context.Context, name string) error {
	return s.rdb.HDel(ctx, onlineKey, name).Err()
}

func (s *redisStore) Get(ctx context.Context, name string) (int, bool, error) {
	val, err := s.rdb.HGet(ctx, onlineKey, name).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	level, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, err
	}
	return level, true, nil
}
