package discovery

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRegistry keeps entries in a map and answers with precomputed go-redis results.
type fakeRegistry struct {
	mu      sync.Mutex
	entries map[string]string
	ttls    map[string]time.Duration
	err     error
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{entries: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRegistry) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.entries[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRegistry) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.entries[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("register then resolve", func(t *testing.T) {
		reg := newFakeRegistry()
		r := NewRedisResolver(reg, "")

		require.NoError(t, r.Register(ctx, "Cards", "http://cards:9000", time.Minute))
		assert.Equal(t, "http://cards:9000", reg.entries["services:cards"])
		assert.Equal(t, time.Minute, reg.ttls["services:cards"])

		addr, err := r.Resolve(ctx, "cards")
		require.NoError(t, err)
		assert.Equal(t, "http://cards:9000", addr)
	})

	t.Run("missing key", func(t *testing.T) {
		r := NewRedisResolver(newFakeRegistry(), "svc/")
		_, err := r.Resolve(ctx, "cards")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		reg := newFakeRegistry()
		reg.err = errors.New("connection refused")
		r := NewRedisResolver(reg, "")

		_, err := r.Resolve(ctx, "cards")
		assert.ErrorContains(t, err, "connection refused")
		assert.NotErrorIs(t, err, ErrServiceNotFound)

		assert.Error(t, r.Register(ctx, "cards", "http://cards:9000", 0))
	})

	t.Run("stored address must be absolute", func(t *testing.T) {
		reg := newFakeRegistry()
		reg.entries["services:cards"] = "cards:9000"
		r := NewRedisResolver(reg, "")

		_, err := r.Resolve(ctx, "cards")
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("register validates input", func(t *testing.T) {
		r := NewRedisResolver(newFakeRegistry(), "")
		assert.ErrorIs(t, r.Register(ctx, "cards", "ftp://cards", 0), ErrInvalidAddress)
		assert.Error(t, r.Register(ctx, "", "http://cards:9000", 0))
	})
}

func TestRedisResolverHeartbeat(t *testing.T) {
	reg := newFakeRegistry()
	r := NewRedisResolver(reg, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Heartbeat(ctx, "cards", "http://cards:9000", 10*time.Millisecond)
	}()

	require.Eventually(t, func() bool {
		addr, err := r.Resolve(context.Background(), "cards")
		return err == nil && addr == "http://cards:9000"
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)

	reg.mu.Lock()
	defer reg.mu.Unlock()
	assert.Equal(t, 30*time.Millisecond, reg.ttls["services:cards"])
}
