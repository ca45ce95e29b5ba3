package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "portfolio:session:"

// RedisStore keeps sessions in Redis with a per-key TTL, letting several
// instances share one session table.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed store with the given token lifetime.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Issue mints a token and stores the session with the configured TTL.
func (s *RedisStore) Issue(ctx context.Context, userID int64, username string) (*Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+token, payload, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Verify returns the session when the token is still present in Redis.
func (s *RedisStore) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	payload, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Revoke removes the token; removing an unknown token is not an error.
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Sweep is a no-op: Redis expires keys itself.
func (s *RedisStore) Sweep(ctx context.Context) (int, error) {
	return 0, nil
}
