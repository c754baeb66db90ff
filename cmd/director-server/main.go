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

	"director/server/internal/api"
	"director/server/internal/config"
	"director/server/internal/httpclient"
	"director/server/internal/provider"
	"director/server/internal/telemetry"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	logger := telemetry.NewLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Error("config_invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prov, err := newProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("provider_init_failed", "provider", cfg.Provider, "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	srv := api.NewServer(prov, logger)
	srv.SetBodyLimit(int64(cfg.MaxBodyMB) << 20)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.HTTPTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server_start",
			"addr", cfg.Addr,
			"provider", cfg.Provider,
			"text_model", cfg.GeminiTextModel,
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		logger.Info("server_shutdown")
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server_exited", "error", err)
		os.Exit(1)
	}
}

func newProvider(ctx context.Context, cfg config.Config, logger *slog.Logger) (provider.Adapter, error) {
	if cfg.Provider == config.ProviderMock {
		return provider.NewMockAdapter(cfg.MockDelay), nil
	}
	return provider.NewGeminiAdapter(ctx, provider.GeminiConfig{
		APIKey:      cfg.GeminiAPIKey,
		TextModel:   cfg.GeminiTextModel,
		VisionModel: cfg.GeminiVisionModel,
		ImageModel:  cfg.GeminiImageModel,
		Logger:      logger,
		HTTPClient: httpclient.New(httpclient.Options{
			PreferIPv4: cfg.PreferIPv4,
			Timeout:    cfg.HTTPTimeout,
		}),
	})
}
