package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CarbonScan_Go/internal/metrics"
)

type MockSnapshotter struct {
	mock.Mock
}

func (m *MockSnapshotter) SnapshotRanks(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestLeaderboardSnapshotJob_Success(t *testing.T) {
	snap := new(MockSnapshotter)
	snap.On("SnapshotRanks", mock.Anything).Return(nil).Once()

	counter := metrics.SchedulerJobRuns.WithLabelValues(JobNameLeaderboardSnapshot, metrics.JobOutcomeSuccess)
	before := testutil.ToFloat64(counter)

	err := NewLeaderboardSnapshotJob(snap, time.Second).Process(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	snap.AssertExpectations(t)
}

func TestLeaderboardSnapshotJob_Failure(t *testing.T) {
	snap := new(MockSnapshotter)
	snap.On("SnapshotRanks", mock.Anything).Return(errors.New("db down")).Once()

	counter := metrics.SchedulerJobRuns.WithLabelValues(JobNameLeaderboardSnapshot, metrics.JobOutcomeError)
	before := testutil.ToFloat64(counter)

	err := NewLeaderboardSnapshotJob(snap, 0).Process(context.Background())

	assert.EqualError(t, err, "db down")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestLeaderboardSnapshotJob_AppliesTimeout(t *testing.T) {
	snap := new(MockSnapshotter)
	snap.On("SnapshotRanks", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil).Once()

	assert.NoError(t, NewLeaderboardSnapshotJob(snap, time.Minute).Process(context.Background()))
	snap.AssertExpectations(t)
}
