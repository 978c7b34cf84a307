package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/bootstrap"
	"github.com/osse101/CarbonScan_Go/internal/config"
	"github.com/osse101/CarbonScan_Go/internal/database"
	"github.com/osse101/CarbonScan_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

// @title CarbonScan API
// @version 1.0
// @description Barcode scanning service that estimates product carbon footprints and rewards lower-carbon shopping.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	envWarnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	for _, w := range envWarnings {
		slog.Warn(w)
	}

	ctx := context.Background()

	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
			slog.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	svcs := bootstrap.InitializeServices(cfg, repos, bootstrap.NewProductResolver(cfg))

	bg, err := bootstrap.StartBackground(ctx, cfg, svcs.Leaderboard)
	if err != nil {
		slog.Error("Failed to start background jobs", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		Version:        cfg.Version,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, dbPool, server.Services{
		Scan:        svcs.Scan,
		User:        svcs.User,
		Leaderboard: svcs.Leaderboard,
		Catalog:     svcs.Engine.Catalog(),
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  bg.Scheduler,
		WorkerPool: bg.Pool,
		DBPool:     dbPool,
	})
}
