package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisScanCount = 100

// RedisKV хранит значения в Redis строками без TTL
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV подключается к Redis и проверяет соединение
func NewRedisKV(ctx context.Context, addr string) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisKV{client: client}, nil
}

// NewRedisKVFromClient оборачивает готовый клиент
func NewRedisKVFromClient(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get redis %s: %w", key, err)
	}
	return value, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set redis %s: %w", key, err)
	}
	return nil
}

func (r *RedisKV) List(ctx context.Context, prefix string) ([]string, error) {
	var (
		cursor uint64
		keys   = []string{}
	)

	for {
		batch, next, err := r.client.Scan(ctx, cursor, prefix+"*", redisScanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("scan redis: %w", err)
		}
		keys = append(keys, batch...)

		cursor = next
		if cursor == 0 {
			break
		}
	}

	sort.Strings(keys)
	return keys, nil
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}
