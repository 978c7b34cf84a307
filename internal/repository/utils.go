package repository

import (
	"context"
	"errors"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// ErrTxClosed is returned by Tx implementations once Commit or Rollback has run
var ErrTxClosed = errors.New(domain.ErrMsgTxClosed)

// LogMsgRollbackFailed is logged when a rollback fails for any reason other than a closed tx
const LogMsgRollbackFailed = "Failed to rollback transaction"

// SafeRollback rolls back tx after a failed or abandoned unit of work.
// Rolling back an already committed transaction is expected and not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, ErrTxClosed) || err.Error() == domain.ErrMsgTxClosed {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
}
