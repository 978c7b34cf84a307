package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgInvalidUserID         = "invalid user id"
	ErrMsgFailedToInsertUser    = "failed to insert user"
	ErrMsgFailedToGetUser       = "failed to get user"
	ErrMsgFailedToGetUserByMail = "failed to get user by email"
)

// Error Messages - Reward State Operations
const (
	ErrMsgFailedToLoadRewardState   = "failed to load reward state"
	ErrMsgFailedToLockRewardState   = "failed to lock reward state"
	ErrMsgFailedToUpdateRewardState = "failed to update reward state"
	ErrMsgFailedToQueryScans        = "failed to query scans"
	ErrMsgFailedToQueryAchievements = "failed to query achievements"
	ErrMsgFailedToQueryTransactions = "failed to query transactions"
	ErrMsgFailedToWriteRewardLog    = "failed to write scans, achievements and transactions"
)

// Error Messages - Leaderboard Operations
const (
	ErrMsgFailedToQueryLeaderboard = "failed to query leaderboard"
	ErrMsgFailedToQueryStats       = "failed to query leaderboard stats"
	ErrMsgFailedToSaveSnapshot     = "failed to save rank snapshot"
	ErrMsgFailedToQuerySnapshot    = "failed to query rank snapshot"
	ErrMsgFailedToPruneSnapshots   = "failed to prune rank snapshots"
)

// Log Messages
const (
	LogMsgRankSnapshotSaved = "Rank snapshot saved"
)
