package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

const envSchemaVersionVar = "ENV_SCHEMA_VERSION"

// RequiredEnvVars must be present in the environment or .env file
var RequiredEnvVars = []string{
	envSchemaVersionVar,
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// envWarning flags a variable whose value is legal but probably unintended
type envWarning struct {
	name    string
	applies func(value string) bool
	message string
}

// envWarnings run in order; callers rely on that order
var envWarnings = []envWarning{
	{"DB_PASSWORD", equals(PlaceholderDBPassword), WarnMsgPlaceholderDBPassword},
	{"API_KEY", equals(PlaceholderAPIKey), WarnMsgPlaceholderAPIKey},
	{"REWARDS_TIMEZONE", func(v string) bool { return v == "" || strings.EqualFold(v, "UTC") }, WarnMsgRewardsTimezoneUTC},
	{"PRODUCT_FALLBACK_PATH", equals(""), WarnMsgFallbackPathDefault},
}

func equals(want string) func(string) bool {
	return func(v string) bool { return v == want }
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	var errs []error

	switch version := os.Getenv(envSchemaVersionVar); version {
	case ExpectedEnvSchemaVersion:
	case "":
		errs = append(errs, fmt.Errorf(ErrMsgEnvSchemaUnsetFormat, ExpectedEnvSchemaVersion))
	default:
		errs = append(errs, fmt.Errorf(ErrMsgEnvSchemaMismatchFormat, ExpectedEnvSchemaVersion, version))
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if name != envSchemaVersionVar && os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMissingEnvVarsFormat, strings.Join(missing, ", ")))
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that
// work but look like leftovers from .env.example
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies(os.Getenv(w.name)) {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
