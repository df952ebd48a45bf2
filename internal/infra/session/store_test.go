package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
)

type store interface {
	Save(ctx context.Context, sess *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

func testSession() *domain.Session {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Session{
		ID:          "sess-1",
		UserID:      "7",
		Role:        domain.RolePatient,
		Name:        "Jane Doe",
		Email:       "jane@medicare.com",
		AccessToken: "a.b.c",
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession(), time.Minute))
	assert.True(t, mr.Exists("medicare:session:sess-1"))
	assert.Equal(t, time.Minute, mr.TTL("medicare:session:sess-1"))

	got, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "7", got.UserID)
	assert.Equal(t, domain.RolePatient, got.Role)
	assert.True(t, testSession().ExpiresAt.Equal(got.ExpiresAt))

	mr.FastForward(2 * time.Minute)
	_, err = s.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession(), time.Minute))
	require.NoError(t, s.Delete(ctx, "sess-1"))

	_, err := s.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, err := NewRedisStore(client).Get(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrStore)
}

func TestMemoryStore(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore(10, 24*time.Hour)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession(), 10*time.Minute))

	got, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	// срок ограничен ttl
	assert.Equal(t, now.Add(10*time.Minute), got.ExpiresAt)

	now = now.Add(11 * time.Minute)
	_, err = s.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore(10, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testSession(), time.Hour))
	require.NoError(t, s.Delete(ctx, "sess-1"))

	_, err := s.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStores_MissingKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	for name, s := range map[string]store{
		"redis":  NewRedisStore(client),
		"memory": NewMemoryStore(10, time.Hour),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), "nope")
			assert.ErrorIs(t, err, ErrSessionNotFound)
		})
	}
}
