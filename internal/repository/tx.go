package repository

import (
	"context"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// RewardStateTx holds a user's row lock for the lifetime of one scan.
// GetRewardStateForUpdate must be called before SaveRewardState.
type RewardStateTx interface {
	Tx
	GetRewardStateForUpdate(ctx context.Context, userID string) (*domain.UserRewardState, error)
	SaveRewardState(ctx context.Context, state *domain.UserRewardState) error
}
