package repository

import (
	"context"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// Leaderboard defines the interface for leaderboard queries and rank snapshots
type Leaderboard interface {
	// GetLeaderboardRows orders users by effective monthly carbon for period
	// (0 when their carbon belongs to another period), then scans descending, then id.
	// limit <= 0 returns every user.
	GetLeaderboardRows(ctx context.Context, period string, limit int) ([]domain.LeaderboardRow, error)
	GetLeaderboardStats(ctx context.Context, period string) (*domain.LeaderboardStats, error)

	SaveRankSnapshot(ctx context.Context, snapshot []domain.RankSnapshot) error
	// GetLatestRankSnapshot returns user id to rank for the newest snapshot, or an empty map
	GetLatestRankSnapshot(ctx context.Context) (map[string]int, error)
	DeleteRankSnapshotsBefore(ctx context.Context, before time.Time) (int64, error)
}
