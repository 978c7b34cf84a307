package repository

import (
	"context"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// User defines the interface for user and reward state persistence
type User interface {
	// CreateUser stores a freshly registered user. Returns domain.ErrDuplicateEmail if the email is taken.
	CreateUser(ctx context.Context, state *domain.UserRewardState) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetRewardState loads the state without locking. RewardTransactions holds
	// only the pending transactions; the full log is read through ListTransactions.
	GetRewardState(ctx context.Context, userID string) (*domain.UserRewardState, error)

	// ListScans returns the newest scans first
	ListScans(ctx context.Context, userID string, limit int) ([]domain.Scan, error)
	// ListTransactions returns the newest transactions first
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.RewardTransaction, error)

	BeginTx(ctx context.Context) (RewardStateTx, error)
}
