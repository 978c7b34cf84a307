package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
	LogDir      string `envconfig:"LOG_DIR" default:"logs"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"carbonscan"`
	Version     string `envconfig:"VERSION" default:"dev"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`

	// Database
	DBUser            string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT" default:"5432"`
	DBName            string        `envconfig:"DB_NAME" default:"carbonscan"`
	DBMaxConns        int           `envconfig:"DB_MAX_CONNS" default:"20"`
	DBMaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
	DBMaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	DBAutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`

	// Security
	APIKey         string   `envconfig:"API_KEY"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	// Product lookup
	ProductAPIBaseURL   string        `envconfig:"PRODUCT_API_BASE_URL" default:"https://world.openfoodfacts.org"`
	ProductAPITimeout   time.Duration `envconfig:"PRODUCT_API_TIMEOUT" default:"5s"`
	ProductCacheSize    int           `envconfig:"PRODUCT_CACHE_SIZE" default:"1000"`
	ProductCacheTTL     time.Duration `envconfig:"PRODUCT_CACHE_TTL" default:"6h"`
	ProductFallbackPath string        `envconfig:"PRODUCT_FALLBACK_PATH" default:"configs/barcode_data.json"`

	// Rewards
	RewardsTimezone   string        `envconfig:"REWARDS_TIMEZONE" default:"UTC"`
	ConfirmationDelay time.Duration `envconfig:"CONFIRMATION_DELAY" default:"24h"`

	// Profile cache
	ProfileCacheSize int           `envconfig:"PROFILE_CACHE_SIZE" default:"1000"`
	ProfileCacheTTL  time.Duration `envconfig:"PROFILE_CACHE_TTL" default:"5m"`

	// Leaderboard
	LeaderboardSnapshotCron string        `envconfig:"LEADERBOARD_SNAPSHOT_CRON" default:"0 0 * * *"`
	SnapshotRetention       time.Duration `envconfig:"SNAPSHOT_RETENTION" default:"720h"`
	WorkerCount             int           `envconfig:"WORKER_COUNT" default:"2"`

	location *time.Location
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgProcessEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and resolves the rewards time zone
func (c *Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, errors.New(ErrMsgAPIKeyRequired))
	}
	if c.Port < MinPort || c.Port > MaxPort {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidPortFormat, c.Port))
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf(ErrMsgInvalidLogFormatFormat, c.LogFormat))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFormat, "DB_MAX_CONNS"))
	}
	if c.ProductCacheSize <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFormat, "PRODUCT_CACHE_SIZE"))
	}
	if c.ProfileCacheSize <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFormat, "PROFILE_CACHE_SIZE"))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFormat, "WORKER_COUNT"))
	}
	for name, d := range map[string]time.Duration{
		"DB_MAX_CONN_IDLE_TIME": c.DBMaxConnIdleTime,
		"DB_MAX_CONN_LIFETIME":  c.DBMaxConnLifetime,
		"PRODUCT_API_TIMEOUT":   c.ProductAPITimeout,
		"PRODUCT_CACHE_TTL":     c.ProductCacheTTL,
		"CONFIRMATION_DELAY":    c.ConfirmationDelay,
		"PROFILE_CACHE_TTL":     c.ProfileCacheTTL,
		"SNAPSHOT_RETENTION":    c.SnapshotRetention,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf(ErrMsgMustBePositiveFormat, name))
		}
	}
	if u, err := url.Parse(c.ProductAPIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidBaseURLFormat, c.ProductAPIBaseURL))
	}

	loc, err := time.LoadLocation(c.RewardsTimezone)
	if err != nil {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidTimezoneFormat, c.RewardsTimezone, err))
	}
	c.location = loc

	return errors.Join(errs...)
}

// Location returns the time zone calendar days and months are evaluated in
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvironmentProduction)
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return pgURL(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
