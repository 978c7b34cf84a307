package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// maintenanceDatabase is always present on a PostgreSQL server
const maintenanceDatabase = "postgres"

// DatabaseTarget is the part of the environment the setup and reset
// commands need. It loads without API_KEY and the service settings.
type DatabaseTarget struct {
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	Name        string `envconfig:"DB_NAME" default:"carbonscan"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
}

// LoadDatabaseTarget reads .env (when present) and the DB_* variables
func LoadDatabaseTarget() (*DatabaseTarget, error) {
	_ = godotenv.Load()

	var t DatabaseTarget
	if err := envconfig.Process("", &t); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgProcessEnv, err)
	}
	return &t, nil
}

// ConnString points at the application database
func (t DatabaseTarget) ConnString() string {
	return pgURL(t.User, t.Password, t.Host, t.Port, t.Name)
}

// MaintenanceConnString points at the server's default database, used to
// create or drop the application one
func (t DatabaseTarget) MaintenanceConnString() string {
	return pgURL(t.User, t.Password, t.Host, t.Port, maintenanceDatabase)
}

func (t DatabaseTarget) IsProduction() bool {
	return strings.EqualFold(t.Environment, EnvironmentProduction)
}

// pgURL escapes credentials so passwords may contain any character
func pgURL(user, password, host, port, database string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
