package product

import "time"

// Open Food Facts client settings
const (
	DefaultBaseURL    = "https://world.openfoodfacts.org"
	ProductPathFormat = "/api/v0/product/%s.json"
	DefaultTimeout    = 5 * time.Second
	DefaultUserAgent  = "CarbonScan/1.0 (+https://github.com/osse101/CarbonScan_Go)"
	MaxRetries        = 2
	RetryBaseDelay    = 200 * time.Millisecond
	maxResponseBytes  = 4 << 20
	offStatusFound    = 1
	headerUserAgent   = "User-Agent"
	headerAccept      = "Accept"
	contentTypeJSON   = "application/json"
)

// Cache settings
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 6 * time.Hour
)

// CacheSchemaVersion invalidates cached entries when the cached shape changes
const CacheSchemaVersion = "1"

// Barcode length bounds (EAN-8 up to GTIN-14)
const (
	MinBarcodeLength = 8
	MaxBarcodeLength = 14
)

// Product sources
const (
	SourceOpenFoodFacts = "openfoodfacts"
	SourceFallback      = "fallback"
)

// catalogSchemaName registers the embedded fallback catalog schema
const catalogSchemaName = "carbonscan-catalog.schema.json"

// BrandUnknown is reported when a product has no brand
const BrandUnknown = "Unknown"

// Log messages
const (
	LogMsgLookupRetry     = "Retrying product lookup"
	LogMsgLookupFailed    = "Product lookup failed"
	LogMsgResolverFailed  = "Product resolver failed, trying next"
	LogMsgCacheHit        = "Product cache hit"
	LogMsgFallbackLoaded  = "Fallback product catalog loaded"
	LogMsgFallbackSkipped = "Skipping fallback catalog entry with invalid barcode"
)
