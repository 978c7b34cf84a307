package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Operation names used when logging service failures
	OpProcessScan     = "Process scan"
	OpRegisterUser    = "Register user"
	OpGetProfile      = "Get profile"
	OpGetScanHistory  = "Get scan history"
	OpGetTransactions = "Get transactions"
	OpGetLeaderboard  = "Get leaderboard"
)

// Probe statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	CheckNameDatabase       = "database"
)
