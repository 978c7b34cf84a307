package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/repository"
)

// MockRepository is a testify mock of repository.User
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, state *domain.UserRewardState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetRewardState(ctx context.Context, userID string) (*domain.UserRewardState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRewardState), args.Error(1)
}

func (m *MockRepository) ListScans(ctx context.Context, userID string, limit int) ([]domain.Scan, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scan), args.Error(1)
}

func (m *MockRepository) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.RewardTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardTransaction), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.RewardStateTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.RewardStateTx), args.Error(1)
}
