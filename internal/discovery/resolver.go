// Package discovery turns logical service names ("cards") into base URLs.
//
// Clients receive a Resolver at construction and consult it on every call, so an
// address change made through StaticResolver.Set is picked up by the next request.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrServiceNotFound is returned when no address is registered for a service name.
	ErrServiceNotFound = errors.New("service not registered")
	// ErrInvalidAddress is returned when a registered address is not an absolute http(s) URL.
	ErrInvalidAddress = errors.New("invalid service address")
)

// Resolver resolves a logical service name to a base URL.
type Resolver interface {
	Resolve(ctx context.Context, service string) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, service string) (string, error)

func (f ResolverFunc) Resolve(ctx context.Context, service string) (string, error) {
	return f(ctx, service)
}

// Fixed returns a Resolver that maps every service name to baseURL.
func Fixed(baseURL string) Resolver {
	return ResolverFunc(func(_ context.Context, _ string) (string, error) {
		return baseURL, nil
	})
}

// StaticResolver holds a name -> base URL table. Safe for concurrent use.
type StaticResolver struct {
	mu    sync.RWMutex
	addrs map[string]string
}

// NewStaticResolver validates and copies addrs into a new resolver.
func NewStaticResolver(addrs map[string]string) (*StaticResolver, error) {
	r := &StaticResolver{addrs: make(map[string]string, len(addrs))}
	for name, addr := range addrs {
		if err := r.Set(name, addr); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ParseStaticResolver builds a resolver from "name=url,name=url".
func ParseStaticResolver(list string) (*StaticResolver, error) {
	addrs := make(map[string]string)
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, addr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("parse service entry %q: expected name=url", entry)
		}
		addrs[strings.TrimSpace(name)] = strings.TrimSpace(addr)
	}
	return NewStaticResolver(addrs)
}

// Set registers or replaces the address of a service.
func (r *StaticResolver) Set(service, addr string) error {
	service = normalizeName(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if err := validateAddress(addr); err != nil {
		return fmt.Errorf("service %s: %w", service, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.addrs[service] = addr
	return nil
}

// Resolve returns the registered base URL for service.
func (r *StaticResolver) Resolve(ctx context.Context, service string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	addr, ok := r.addrs[normalizeName(service)]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("resolve %q: %w", service, ErrServiceNotFound)
	}
	return addr, nil
}

// Services lists registered names in sorted order.
func (r *StaticResolver) Services() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.addrs))
	for name := range r.addrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Service names are case-insensitive, matching how registries treat application names.
func normalizeName(service string) string {
	return strings.ToLower(strings.TrimSpace(service))
}

func validateAddress(addr string) error {
	u, err := url.Parse(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidAddress)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidAddress)
	}
	return nil
}

var (
	_ Resolver = (*StaticResolver)(nil)
	_ Resolver = ResolverFunc(nil)
)
