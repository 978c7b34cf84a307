package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/user"
)

// MockScanService mocks scan.Service
type MockScanService struct {
	mock.Mock
}

func (m *MockScanService) ProcessScan(ctx context.Context, req domain.ScanRequest) (*domain.ScanResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScanResponse), args.Error(1)
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name, email string) (*domain.User, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserService) GetScanHistory(ctx context.Context, userID string, limit int) ([]domain.Scan, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scan), args.Error(1)
}

func (m *MockUserService) GetTransactions(ctx context.Context, userID string, limit int) ([]domain.RewardTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardTransaction), args.Error(1)
}

func (m *MockUserService) InvalidateProfile(userID string) {
	m.Called(userID)
}

func (m *MockUserService) GetCacheStats() user.CacheStats {
	return m.Called().Get(0).(user.CacheStats)
}

// MockLeaderboardService mocks leaderboard.Service
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context, limit int) (*domain.Leaderboard, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Leaderboard), args.Error(1)
}

func (m *MockLeaderboardService) SnapshotRanks(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
