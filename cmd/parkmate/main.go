package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parkmate/parkmate-client/internal/client"
	"github.com/parkmate/parkmate-client/internal/core/ports"
	"github.com/parkmate/parkmate-client/internal/core/service"
	"github.com/parkmate/parkmate-client/internal/infrastructure/storage"
	"github.com/parkmate/parkmate-client/internal/pkg/config"
	"github.com/parkmate/parkmate-client/internal/shell"
	"github.com/parkmate/parkmate-client/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Session.Backend).Msg("session store init failed")
	}
	defer cleanup()

	session := service.NewSession(store, log)
	api := client.New(cfg.APIBaseURL, session, log)

	app := shell.New(api, api.Admin(), api.User(), session, log).Router()

	log.Info().
		Str("env", cfg.Env).
		Str("api_base_url", cfg.APIBaseURL).
		Str("addr", cfg.Shell.Addr).
		Str("session_backend", cfg.Session.Backend).
		Msg("starting shell")

	go func() {
		if err := app.Start(cfg.Shell.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("shell server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

// newStore picks the session backend from configuration. The returned cleanup
// closes any underlying connection.
func newStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, func(), error) {
	switch cfg.Session.Backend {
	case "memory":
		return storage.NewMemoryStore(), func() {}, nil
	case "redis":
		rdb, err := storage.Connect(ctx, storage.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(rdb, ""), func() { _ = rdb.Close() }, nil
	default:
		fs, err := storage.NewFileStore(cfg.Session.Path)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
