package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces service entries in Redis.
const DefaultKeyPrefix = "services:"

// Registry is the subset of the go-redis client used by RedisResolver.
type Registry interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisResolver resolves services from keys "<prefix><name>" holding a base URL.
// Services announce themselves with Register.
type RedisResolver struct {
	registry Registry
	prefix   string
}

func NewRedisResolver(registry Registry, prefix string) *RedisResolver {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisResolver{registry: registry, prefix: prefix}
}

func (r *RedisResolver) Resolve(ctx context.Context, service string) (string, error) {
	addr, err := r.registry.Get(ctx, r.key(service)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("resolve %q: %w", service, ErrServiceNotFound)
		}
		return "", fmt.Errorf("resolve %q: %w", service, err)
	}
	if err := validateAddress(addr); err != nil {
		return "", fmt.Errorf("resolve %q: %w", service, err)
	}
	return addr, nil
}

// Register publishes addr for service. A positive ttl makes the entry expire
// unless it is refreshed.
func (r *RedisResolver) Register(ctx context.Context, service, addr string, ttl time.Duration) error {
	if normalizeName(service) == "" {
		return fmt.Errorf("service name is required")
	}
	if err := validateAddress(addr); err != nil {
		return fmt.Errorf("service %s: %w", service, err)
	}
	if err := r.registry.Set(ctx, r.key(service), addr, ttl).Err(); err != nil {
		return fmt.Errorf("register %q: %w", service, err)
	}
	return nil
}

// Heartbeat re-registers service every interval until ctx is done, so the entry
// outlives its ttl only while the process is alive.
func (r *RedisResolver) Heartbeat(ctx context.Context, service, addr string, interval time.Duration) error {
	ttl := 3 * interval
	if err := r.Register(ctx, service, addr, ttl); err != nil {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.Register(ctx, service, addr, ttl); err != nil && ctx.Err() == nil {
				return err
			}
		}
	}
}

func (r *RedisResolver) key(service string) string {
	return r.prefix + normalizeName(service)
}

var _ Resolver = (*RedisResolver)(nil)
