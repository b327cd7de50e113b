package discovery

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StaticResolverSuite struct {
	suite.Suite
	resolver *StaticResolver
}

func TestStaticResolverSuite(t *testing.T) {
	suite.Run(t, new(StaticResolverSuite))
}

func (s *StaticResolverSuite) SetupTest() {
	r, err := NewStaticResolver(map[string]string{"cards": "http://cards:9000"})
	s.Require().NoError(err)
	s.resolver = r
}

func (s *StaticResolverSuite) TestResolve() {
	s.Run("returns registered address", func() {
		addr, err := s.resolver.Resolve(context.Background(), "cards")
		s.Require().NoError(err)
		s.Equal("http://cards:9000", addr)
	})

	s.Run("names are case-insensitive", func() {
		addr, err := s.resolver.Resolve(context.Background(), " CARDS ")
		s.Require().NoError(err)
		s.Equal("http://cards:9000", addr)
	})

	s.Run("unknown service", func() {
		_, err := s.resolver.Resolve(context.Background(), "loans")
		s.True(errors.Is(err, ErrServiceNotFound))
	})

	s.Run("cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.resolver.Resolve(ctx, "cards")
		s.ErrorIs(err, context.Canceled)
	})
}

func (s *StaticResolverSuite) TestSet() {
	s.Run("replaces address", func() {
		s.Require().NoError(s.resolver.Set("cards", "https://cards.internal/api"))
		addr, err := s.resolver.Resolve(context.Background(), "cards")
		s.Require().NoError(err)
		s.Equal("https://cards.internal/api", addr)
	})

	s.Run("rejects relative and non-http addresses", func() {
		for _, addr := range []string{"cards:9000", "/myCards", "ftp://cards", "http://"} {
			err := s.resolver.Set("cards", addr)
			s.ErrorIs(err, ErrInvalidAddress, addr)
		}
	})

	s.Run("rejects empty name", func() {
		s.Error(s.resolver.Set("  ", "http://cards:9000"))
	})
}

func (s *StaticResolverSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.resolver.Set("cards", "http://cards:9001")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.resolver.Resolve(context.Background(), "cards")
		}()
	}
	wg.Wait()
	s.Equal([]string{"cards"}, s.resolver.Services())
}

func TestParseStaticResolver(t *testing.T) {
	t.Run("parses multiple entries", func(t *testing.T) {
		r, err := ParseStaticResolver("cards=http://localhost:9000, loans=http://localhost:8090,")
		require.NoError(t, err)
		assert.Equal(t, []string{"cards", "loans"}, r.Services())
	})

	t.Run("empty list yields empty resolver", func(t *testing.T) {
		r, err := ParseStaticResolver("")
		require.NoError(t, err)
		assert.Empty(t, r.Services())
	})

	t.Run("entry without separator", func(t *testing.T) {
		_, err := ParseStaticResolver("cards")
		assert.Error(t, err)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := ParseStaticResolver("cards=not a url")
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestFixed(t *testing.T) {
	addr, err := Fixed("http://127.0.0.1:1234").Resolve(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:1234", addr)
}
