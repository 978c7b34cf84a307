package worker

import (
	"context"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/logger"
	"github.com/osse101/CarbonScan_Go/internal/metrics"
)

// RankSnapshotter records the current leaderboard ranks
type RankSnapshotter interface {
	SnapshotRanks(ctx context.Context) error
}

// LeaderboardSnapshotJob stores a rank snapshot so that leaderboard rank
// changes can be computed against it later
type LeaderboardSnapshotJob struct {
	snapshotter RankSnapshotter
	timeout     time.Duration
}

// NewLeaderboardSnapshotJob creates the job. A zero timeout means none.
func NewLeaderboardSnapshotJob(snapshotter RankSnapshotter, timeout time.Duration) *LeaderboardSnapshotJob {
	return &LeaderboardSnapshotJob{snapshotter: snapshotter, timeout: timeout}
}

// Process takes one snapshot
func (j *LeaderboardSnapshotJob) Process(ctx context.Context) error {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgSnapshotStarting)
	start := time.Now()

	err := j.snapshotter.SnapshotRanks(ctx)
	metrics.RecordJobRun(JobNameLeaderboardSnapshot, err)
	if err != nil {
		log.Error(LogMsgSnapshotFailed, "error", err)
		return err
	}

	log.Info(LogMsgSnapshotCompleted, "duration", time.Since(start))
	return nil
}
