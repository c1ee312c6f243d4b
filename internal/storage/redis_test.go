package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStoreWithClient(client, "luxride:"), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestRedisStore(t)

	_, err := s.Get(ctx, KeyBookings)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, KeyBookings, []byte(`[{"id":"b1"}]`)))

	raw, err := s.Get(ctx, KeyBookings)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b1"}]`, string(raw))

	stored, err := mr.Get("luxride:bookings")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"b1"}]`, stored)
	assert.NoError(t, s.Ping(ctx))
	assert.Equal(t, "redis", s.Driver())
}

func TestNewRedisStoreConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	store, err := NewRedisStore(RedisConfig{Addr: addr})

	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
