package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"complaintdesk/internal/domain/user"
)

var _ user.SessionStore = (*RedisStore)(nil)

// redisClient is the subset of redis.Cmdable the store uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps the session token under a single Redis key. A zero ttl
// stores the key without expiry.
type RedisStore struct {
	client redisClient
	key    string
	ttl    time.Duration
	codec  TokenCodec
}

func NewRedisStore(client redisClient, key string, ttl time.Duration, codec TokenCodec) *RedisStore {
	return &RedisStore{
		client: client,
		key:    key,
		ttl:    ttl,
		codec:  codec,
	}
}

func (s *RedisStore) Load(ctx context.Context) (*user.User, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, user.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session from redis: %w", err)
	}
	if token == "" {
		return nil, user.ErrNoSession
	}
	return s.codec.Decode(token)
}

func (s *RedisStore) Save(ctx context.Context, u *user.User) error {
	token, err := s.codec.Encode(u)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}

// NewRedisClient opens a client and checks connectivity.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}
