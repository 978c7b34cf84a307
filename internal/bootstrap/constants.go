package bootstrap

import "time"

// Session log files
const (
	DirPermission     = 0755
	LogFilePermission = 0644

	// LogFileTimestampFormat sorts lexically in time order
	LogFileTimestampFormat = "20060102T150405"
	LogFileNamePattern     = "carbonscan_%s.log"
	LogFileExtension       = ".log"
	// LogFileRetentionCount older sessions are kept next to the new one
	LogFileRetentionCount = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting CarbonScan"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// Service wiring
const (
	// WorkerQueueSize bounds the background job queue
	WorkerQueueSize = 16

	// SnapshotJobTimeout caps a single leaderboard snapshot run
	SnapshotJobTimeout = 2 * time.Minute
)

const (
	LogMsgFallbackCatalogUnavailable = "Offline product catalog unavailable, using live lookups only"
	LogMsgSnapshotJobScheduled       = "Leaderboard snapshot job scheduled"
	ErrMsgScheduleSnapshotJob        = "failed to schedule leaderboard snapshot"
)

// Shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping scheduler"
	LogMsgStoppingWorkers      = "Stopping background workers"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
