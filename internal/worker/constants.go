package worker

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
	ErrMsgJobPanicked     = "job panicked"
)

// Leaderboard snapshot job
const (
	LogMsgSnapshotStarting  = "Leaderboard snapshot starting"
	LogMsgSnapshotCompleted = "Leaderboard snapshot completed"
	LogMsgSnapshotFailed    = "Leaderboard snapshot failed"

	// JobNameLeaderboardSnapshot labels the snapshot job in metrics
	JobNameLeaderboardSnapshot = "leaderboard_snapshot"
)
