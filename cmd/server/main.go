package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"accounts/internal/accounts/service"
	"accounts/internal/accounts/store"
	cardsclient "accounts/internal/cards/client"
	cardsmetrics "accounts/internal/cards/metrics"
	"accounts/internal/discovery"
	"accounts/internal/platform/config"
	"accounts/internal/platform/database"
	"accounts/internal/platform/health"
	"accounts/internal/platform/logger"
	"accounts/internal/platform/metrics"
	redisclient "accounts/internal/platform/redis"
	"accounts/migrations"
	"accounts/pkg/platform/tracer"
)

const redisStatsInterval = 15 * time.Second

// main loads configuration, wires dependencies and runs the HTTP server until
// SIGINT or SIGTERM. Business logic lives in internal packages.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := metrics.NewRegistry()
	healthHandler := health.New(cfg.Environment)

	db, err := database.New(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // closed on exit

	redis, err := redisclient.New(cfg.Redis, reg)
	if err != nil {
		return err
	}
	if redis != nil {
		defer redis.Close() //nolint:errcheck // closed on exit
	}

	accountStore, err := buildStore(ctx, db, healthHandler, log)
	if err != nil {
		return err
	}

	resolver, err := buildResolver(cfg, redis, healthHandler)
	if err != nil {
		return err
	}

	tr := tracer.NewOTel()
	cards := cardsclient.New(resolver,
		cardsclient.WithHTTPClient(&http.Client{Timeout: cfg.Cards.HTTPTimeout}),
		cardsclient.WithServiceName(cfg.Cards.ServiceName),
		cardsclient.WithPath(cfg.Cards.Path),
		cardsclient.WithMetrics(cardsmetrics.New(reg)),
		cardsclient.WithTracer(tr),
	)
	healthHandler.RegisterCheck("cards", func(ctx context.Context) error {
		_, err := resolver.Resolve(ctx, cards.Service())
		return err
	})

	svc := service.New(accountStore, cards,
		service.WithLogger(log),
		service.WithTracer(tr),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(svc, healthHandler, reg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("initializing accounts service",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"cards_service", cfg.Cards.ServiceName,
		"postgres", db != nil,
		"redis_discovery", redis != nil,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if redis != nil {
		g.Go(func() error {
			return redis.RunPoolStats(gctx, redisStatsInterval)
		})
	}
	return g.Wait()
}

// buildStore selects Postgres when configured and the memory store otherwise.
// Both are seeded with demo data.
func buildStore(ctx context.Context, db *database.Pool, h *health.Handler, log *slog.Logger) (service.Store, error) {
	if db == nil {
		s := store.NewInMemory()
		if err := store.Seed(ctx, s); err != nil {
			return nil, err
		}
		log.Info("using in-memory account store")
		return s, nil
	}

	if err := database.Migrate(ctx, db.DB(), migrations.FS); err != nil {
		return nil, err
	}
	s := store.NewPostgres(db.DB())
	if err := store.Seed(ctx, s); err != nil {
		return nil, err
	}
	h.RegisterCheck("database", db.Health)
	return s, nil
}

// buildResolver prefers the Redis registry; SERVICE_URLS is used without Redis.
func buildResolver(cfg config.Server, redis *redisclient.Client, h *health.Handler) (discovery.Resolver, error) {
	if redis != nil {
		h.RegisterCheck("redis", redis.Health)
		return discovery.NewRedisResolver(redis, cfg.Discovery.RegistryKeyPrefix), nil
	}
	resolver, err := discovery.ParseStaticResolver(cfg.Discovery.ServiceURLs)
	if err != nil {
		return nil, fmt.Errorf("parse SERVICE_URLS: %w", err)
	}
	return resolver, nil
}
