// Package server собирает HTTP сервер аутентификации из хранилища,
// сервиса токенов, handlers и middleware и управляет его жизненным циклом.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/iudanet/socialnet/internal/config"
	"github.com/iudanet/socialnet/internal/crypto"
	"github.com/iudanet/socialnet/internal/server/auth"
	"github.com/iudanet/socialnet/internal/server/metrics"
	"github.com/iudanet/socialnet/internal/server/middleware"
	"github.com/iudanet/socialnet/internal/server/storage"
	"github.com/iudanet/socialnet/internal/server/storage/postgres"
	"github.com/iudanet/socialnet/internal/server/storage/sqlite"
	"github.com/iudanet/socialnet/internal/server/token"
)

// App сервер со всеми зависимостями
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	storage  storage.Storage
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	codec    *token.Codec
	service  *auth.Service
	reaper   *auth.Reaper
	limiter  *middleware.RateLimiter
	version  string
}

// OpenStorage выбирает backend по DSN: postgres:// или postgresql:// открывают
// PostgreSQL, все остальное считается путем к файлу SQLite
func OpenStorage(ctx context.Context, dsn string) (storage.Storage, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		s, err := postgres.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := sqlite.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewApp создает сервер. Хранилище передается готовым, App закрывает его в Close.
func NewApp(cfg *config.Config, logger *slog.Logger, store storage.Storage, version string) (*App, error) {
	codec, err := token.NewCodec(token.Config{
		AccessSecret:      []byte(cfg.AccessTokenSecret),
		RefreshSecret:     []byte(cfg.RefreshTokenSecret),
		FingerprintSecret: []byte(cfg.FingerprintSecret),
		AccessTTL:         cfg.AccessTokenTTL,
		RefreshTTL:        cfg.RefreshTokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	tokens := auth.NewTokenStore(store)
	service, err := auth.NewService(
		logger,
		store,
		tokens,
		codec,
		crypto.NewBcryptHasher(cfg.BcryptCost),
		auth.WithMetrics(m),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	return &App{
		cfg:      cfg,
		logger:   logger,
		storage:  store,
		registry: registry,
		metrics:  m,
		codec:    codec,
		service:  service,
		reaper:   auth.NewReaper(logger, tokens, cfg.RefreshTokenTTL, cfg.ReapInterval, m),
		limiter:  middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow, logger),
		version:  version,
	}, nil
}

// Run запускает HTTP сервер и фоновую очистку токенов.
// Возвращается после отмены ctx и graceful shutdown или при ошибке сервера.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	reaperCtx, stopReaper := context.WithCancel(ctx)
	defer stopReaper()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.reaper.Run(reaperCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.InfoContext(ctx, "Server started", slog.String("address", a.cfg.Address), slog.String("version", a.version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.InfoContext(ctx, "Shutting down server")
	case err := <-errCh:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.ErrorContext(ctx, "Graceful shutdown failed", slog.Any("error", err))
		if runErr == nil {
			runErr = fmt.Errorf("failed to shut down server: %w", err)
		}
	}

	stopReaper()
	wg.Wait()

	return runErr
}

// Close освобождает ресурсы: rate limiter и хранилище
func (a *App) Close() error {
	a.limiter.Stop()
	if err := a.storage.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
