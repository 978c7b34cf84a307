package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, ErrMsgInvalidUserID, err)
	}
	return u, nil
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// limitArg maps a non-positive limit to SQL NULL, which LIMIT treats as unbounded
func limitArg(limit int) *int {
	if limit <= 0 {
		return nil
	}
	return &limit
}
