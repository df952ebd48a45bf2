package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

// MemoryStore in-process хранилище для single-instance запуска
type MemoryStore struct {
	cache *expirable.LRU[string, domain.Session]
	now   func() time.Time
}

// NewMemoryStore ttl кэша ограничивает жизнь записи сверху, точный срок берётся из ExpiresAt
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: expirable.NewLRU[string, domain.Session](size, nil, ttl),
		now:   time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	stored := *sess
	if deadline := s.now().Add(ttl); stored.ExpiresAt.IsZero() || deadline.Before(stored.ExpiresAt) {
		stored.ExpiresAt = deadline
	}
	s.cache.Add(sess.ID, stored)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.IsExpired(s.now()) {
		s.cache.Remove(id)
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.cache.Remove(id)
	return nil
}
