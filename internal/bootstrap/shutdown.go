package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CarbonScan_Go/internal/database"
	"github.com/osse101/CarbonScan_Go/internal/scheduler"
	"github.com/osse101/CarbonScan_Go/internal/worker"
)

// HTTPServer is the part of the server that shutdown needs
type HTTPServer interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server     HTTPServer
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DBPool     database.Pool
}

// GracefulShutdown stops components outside in:
// 1. HTTP server (stop accepting new scans)
// 2. Scheduler (no new jobs)
// 3. Worker pool (drain running jobs)
// 4. Database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgStoppingWorkers)
		components.WorkerPool.Stop()
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
