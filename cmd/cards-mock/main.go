// Command cards-mock serves a stand-in "cards" service for local runs and e2e tests.
//
// Magic mobile numbers control the response:
//
//	0000000000  empty list
//	4040404040  404
//	5000000000  500
//	1111111111  malformed JSON
//	2222222222  responds after SLOW_LATENCY (default 3s)
//
// Any other customer receives deterministic cards derived from its id or mobile number.
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

	"accounts/internal/discovery"
	"accounts/internal/platform/config"
	"accounts/internal/platform/logger"
	"accounts/internal/platform/metrics"
	redisclient "accounts/internal/platform/redis"
)

const heartbeatInterval = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(getEnv("LOG_LEVEL", "info"))
	addr := getEnv("CARDS_ADDR", ":9000")
	latency, err := time.ParseDuration(getEnv("SLOW_LATENCY", "3s"))
	if err != nil {
		log.Error("invalid SLOW_LATENCY", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, addr, latency, log); err != nil {
		log.Error("cards mock exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, addr string, latency time.Duration, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(latency, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("mock cards service starting", "addr", addr, "slow_latency", latency)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	// With REDIS_URL set the mock announces itself to the discovery registry.
	if url := os.Getenv("REDIS_URL"); url != "" {
		client, err := redisclient.New(config.RedisConfig{URL: url, DialTimeout: 2 * time.Second}, metrics.NewRegistry())
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck // closed on exit

		registry := discovery.NewRedisResolver(client, getEnv("DISCOVERY_KEY_PREFIX", discovery.DefaultKeyPrefix))
		advertise := getEnv("ADVERTISE_URL", "http://localhost"+addr)
		g.Go(func() error {
			log.Info("registering with discovery", "service", "cards", "url", advertise)
			return registry.Heartbeat(gctx, "cards", advertise, heartbeatInterval)
		})
	}

	return g.Wait()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
