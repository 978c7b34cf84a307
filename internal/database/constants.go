package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// PingTimeout bounds the startup connectivity check
	PingTimeout = 5 * time.Second
)

// Migration settings
const (
	sqlDriverName = "pgx"
	gooseDialect  = "postgres"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString   = "failed to parse connection string"
	ErrMsgFailedToCreatePool        = "failed to create connection pool"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToOpenMigrationConn = "failed to open migration connection"
	ErrMsgFailedToRunMigrations     = "failed to run migrations"
	ErrMsgFailedToConnectServer     = "failed to connect to maintenance database"
	ErrMsgFailedToCheckDatabase     = "failed to check for database"
	ErrMsgFailedToCreateDatabase    = "failed to create database"
	ErrMsgFailedToDropDatabase      = "failed to drop database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
	LogMsgDatabaseCreated                 = "Database created"
	LogMsgDatabaseRecreated               = "Database dropped and recreated"
	LogMsgSessionsTerminated              = "Terminated open sessions"
	LogMsgTerminateSessionsFailed         = "Failed to terminate open sessions"
)
