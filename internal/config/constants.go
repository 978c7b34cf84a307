package config

// Port range accepted for PORT
const (
	MinPort = 1
	MaxPort = 65535
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// EnvironmentProduction is the ENVIRONMENT value for production deployments
const EnvironmentProduction = "prod"

// Error messages
const (
	ErrMsgProcessEnv             = "failed to process environment"
	ErrMsgAPIKeyRequired         = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPortFormat      = "invalid PORT value %d: must be between 1 and 65535"
	ErrMsgInvalidLogFormatFormat = "invalid LOG_FORMAT %q: must be text or json"
	ErrMsgMustBePositiveFormat   = "%s must be positive"
	ErrMsgInvalidBaseURLFormat   = "invalid PRODUCT_API_BASE_URL %q"
	ErrMsgInvalidTimezoneFormat  = "invalid REWARDS_TIMEZONE %q: %w"
)

// Placeholder values shipped in .env.example
const (
	PlaceholderDBPassword = "change_this_secure_password"
	PlaceholderAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Environment schema errors
const (
	ErrMsgEnvSchemaUnsetFormat    = "ENV_SCHEMA_VERSION is not set (expected %s), copy it from .env.example"
	ErrMsgEnvSchemaMismatchFormat = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s"
	ErrMsgMissingEnvVarsFormat    = "missing required environment variables: %s"
)

// Environment warnings
const (
	WarnMsgPlaceholderDBPassword = "DB_PASSWORD still has the .env.example value"
	WarnMsgPlaceholderAPIKey     = "API_KEY still has the .env.example value, generate one with: openssl rand -hex 32"
	WarnMsgRewardsTimezoneUTC    = "REWARDS_TIMEZONE is UTC, so streaks and monthly bonuses roll over at UTC midnight"
	WarnMsgFallbackPathDefault   = "PRODUCT_FALLBACK_PATH not set, using configs/barcode_data.json"
)
