package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

const keyPrefix = "medicare:session:"

// RedisStore хранит сессии JSON-значениями с TTL
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: marshal session: %v", ErrStore, err)
	}
	if err := s.client.Set(ctx, keyPrefix+sess.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStore, sess.ID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrStore, id, err)
	}

	var sess domain.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("%w: unmarshal session %s: %v", ErrStore, id, err)
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrStore, id, err)
	}
	return nil
}
