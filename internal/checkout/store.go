package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists checkout sessions. One live session per user.
type SessionStore interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, userID uint) (*Session, error)
	Delete(ctx context.Context, userID uint) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) SessionStore {
	return &redisStore{client: client}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("checkout:session:%d", userID)
}

func (r *redisStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}
	return r.client.Set(ctx, sessionKey(s.UserID), data, ttl).Err()
}

func (r *redisStore) Get(ctx context.Context, userID uint) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *redisStore) Delete(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, sessionKey(userID)).Err()
}
