package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/LianHaeming/workoutplanner/config"
	"github.com/LianHaeming/workoutplanner/handlers"
	"github.com/LianHaeming/workoutplanner/logging"
	"github.com/LianHaeming/workoutplanner/planner"
	"github.com/LianHaeming/workoutplanner/storage"
	"github.com/LianHaeming/workoutplanner/telemetry"
	"github.com/LianHaeming/workoutplanner/tmpl"
	"github.com/LianHaeming/workoutplanner/web"
)

// BuildVersion is set at compile time via -ldflags.
// If empty (local dev), falls back to a timestamp so assets are never cached.
var BuildVersion string

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		config.Exitf("logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("workout planner stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run serves until ctx is done. Everything it opens is closed before it
// returns, on success or failure.
func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	assetVer := BuildVersion
	if assetVer == "" {
		assetVer = strconv.FormatInt(time.Now().Unix(), 10)
	}

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Options{
		ServiceName: "workoutplanner",
		Enabled:     cfg.OTelEnabled,
		Endpoint:    cfg.OTelEndpoint,
	})
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	slot, err := storage.Open(ctx, storage.Options{
		Driver:        cfg.StorageDriver,
		Path:          cfg.StoragePath,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		RedisPrefix:   cfg.RedisPrefix,
	})
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}
	defer func() {
		if err := slot.Close(); err != nil {
			logger.Warn("close storage failed", zap.Error(err))
		}
	}()

	p := planner.New(slot, logger.Named("planner"))
	schedule := p.Load(ctx)
	logger.Info("schedule loaded", zap.Int("exercises", schedule.Count()))

	templates, err := tmpl.Load(web.Templates(), assetVer)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	deps := &handlers.Deps{
		Planner:      p,
		Settings:     storage.NewSettingsStore(slot, logger.Named("settings")),
		Templates:    templates,
		Logger:       logger.Named("http"),
		ICSStartHour: cfg.ICSStartHour,
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	server := &http.Server{
		Handler: deps.Routes(handlers.RouterOptions{
			CORSOrigins: cfg.CORSOrigins,
			Static:      web.Static(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("workout planner listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("storage", cfg.StorageDriver),
		)
		serveErr <- server.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
