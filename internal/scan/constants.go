package scan

// Tracking errors surfaced on a response whose rewards could not be computed
const (
	TrackingErrMsgUserNotFound = "user not found, scan was not tracked"
	TrackingErrMsgUnavailable  = "reward tracking is temporarily unavailable"
)

// Log messages
const (
	LogMsgScanProcessed       = "Scan processed"
	LogMsgAnonymousScan       = "Anonymous scan, rewards skipped"
	LogMsgProductLookupFailed = "Product lookup failed"
	LogMsgRewardStateLoad     = "Failed to load reward state, returning carbon data only"
	LogMsgRewardStateSave     = "Failed to save reward state, rewards not persisted"
	LogMsgRewardStateCommit   = "Failed to commit reward state, rewards not persisted"
)
