package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/external/midtrans"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/config"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/db"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/middleware"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/repository"
	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("JWT_SECRET not set, signing tokens with the development secret")
	}

	// ======================
	// INFRA
	// ======================
	repos, closeStore, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	revocations, closeRevocations, err := openRevocations(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRevocations()

	// ======================
	// EXTERNALS
	// ======================
	var snapClient services.SnapClient
	if cfg.MidtransServerKey != "" {
		c, err := midtrans.NewSnapClient(cfg.MidtransServerKey, cfg.MidtransEnv)
		if err != nil {
			return err
		}
		snapClient = c
	} else {
		logger.Warn("MIDTRANS_SERVER_KEY not set, wallet top-ups disabled")
	}

	e := newServer(serverOptions{
		Repos:              repos,
		Auth:               middleware.NewAuth(cfg.JWTSecret, cfg.TokenTTL, revocations),
		Snap:               snapClient,
		MidtransServerKey:  cfg.MidtransServerKey,
		DefaultWalletMoney: cfg.DefaultWalletMoney,
		Logger:             logger,
	})

	// ======================
	// SERVER
	// ======================
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port)
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}

// openRepositories connects to Postgres when DATABASE_URL is set and
// falls back to the in-memory store otherwise.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		store := repository.NewMemoryStore()
		if cfg.SeedProducts {
			catalog, err := db.SeedCatalog()
			if err != nil {
				return repositories{}, nil, err
			}
			logger.Info("seeded products", "count", store.SeedProducts(catalog))
		}
		return memoryRepositories(store), func() {}, nil
	}

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return repositories{}, nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return repositories{}, nil, err
	}
	if cfg.SeedProducts {
		n, err := db.SeedProducts(ctx, pool)
		if err != nil {
			pool.Close()
			return repositories{}, nil, err
		}
		if n > 0 {
			logger.Info("seeded products", "count", n)
		}
	}
	return postgresRepositories(pool), pool.Close, nil
}

func openRevocations(ctx context.Context, cfg *config.Config, logger *slog.Logger) (middleware.Revocations, func(), error) {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, logged-out tokens are tracked in memory")
		return repository.NewMemoryDenylist(), func() {}, nil
	}
	client, err := repository.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewTokenDenylist(client), func() { client.Close() }, nil
}
