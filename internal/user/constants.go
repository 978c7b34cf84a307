package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the profile cache schema.
// Increment this when domain.UserProfile changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cached profiles
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cached profiles
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Paging
// ============================================================================

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// ============================================================================
// Registration
// ============================================================================

// MaxNameLength is the longest display name accepted at registration
const MaxNameLength = 100

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUserRegistered  = "User registered"
	LogMsgDuplicateEmail  = "Registration rejected, email already registered"
	LogMsgProfileCacheHit = "Profile served from cache"
)
