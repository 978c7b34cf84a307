package leaderboard

import "time"

// ============================================================================
// Query Limits
// ============================================================================

// DefaultLeaderboardLimit is the number of entries returned when no limit is given
const DefaultLeaderboardLimit = 10

// MaxLeaderboardLimit caps a requested limit
const MaxLeaderboardLimit = 100

// ============================================================================
// Rank Change
// ============================================================================

// Without a previous snapshot, activity decides the displayed movement
const (
	HeuristicActiveScans = 5
	HeuristicIdleScans   = 0
)

// DefaultSnapshotRetention is how long rank snapshots are kept
const DefaultSnapshotRetention = 30 * 24 * time.Hour

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgGetLeaderboardFailed = "failed to get leaderboard: %w"
	ErrMsgGetStatsFailed       = "failed to get leaderboard stats: %w"
	ErrMsgSnapshotFailed       = "failed to snapshot ranks: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRetrievedLeaderboard = "Retrieved leaderboard"
	LogMsgSnapshotUnavailable  = "Rank snapshot unavailable, using activity heuristic"
	LogMsgRanksSnapshotted     = "Ranks snapshotted"
	LogMsgSnapshotsPruned      = "Old rank snapshots pruned"
	LogMsgPruneFailed          = "Failed to prune old rank snapshots"
)
