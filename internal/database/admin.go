package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// EnsureDatabase creates name unless it already exists. maintenanceConn must
// point at another database on the same server.
func EnsureDatabase(ctx context.Context, maintenanceConn, name string) (created bool, err error) {
	conn, err := pgx.Connect(ctx, maintenanceConn)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToConnectServer, err)
	}
	defer conn.Close(ctx)

	var exists bool
	if err := conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCheckDatabase, err)
	}
	if exists {
		return false, nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToCreateDatabase, err)
	}
	slog.Default().Info(LogMsgDatabaseCreated, "database", name)
	return true, nil
}

// RecreateDatabase disconnects every session of name, drops it and creates
// it empty
func RecreateDatabase(ctx context.Context, maintenanceConn, name string) error {
	conn, err := pgx.Connect(ctx, maintenanceConn)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToConnectServer, err)
	}
	defer conn.Close(ctx)

	var terminated int
	err = conn.QueryRow(ctx, `
		SELECT COUNT(pg_terminate_backend(pid))
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()
	`, name).Scan(&terminated)
	if err != nil {
		slog.Default().Warn(LogMsgTerminateSessionsFailed, "database", name, "error", err)
	} else if terminated > 0 {
		slog.Default().Info(LogMsgSessionsTerminated, "database", name, "sessions", terminated)
	}

	ident := pgx.Identifier{name}.Sanitize()
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDropDatabase, err)
	}
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateDatabase, err)
	}
	slog.Default().Info(LogMsgDatabaseRecreated, "database", name)
	return nil
}
