package leaderboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
	"github.com/osse101/CarbonScan_Go/internal/repository"
)

// Service defines the interface for the carbon leaderboard
type Service interface {
	GetLeaderboard(ctx context.Context, limit int) (*domain.Leaderboard, error)
	// SnapshotRanks records every user's current rank and prunes expired snapshots
	SnapshotRanks(ctx context.Context) error
}

// Config configures the leaderboard service
type Config struct {
	// Location decides which YYYY-MM period is current
	Location          *time.Location
	SnapshotRetention time.Duration
}

type service struct {
	repo      repository.Leaderboard
	loc       *time.Location
	retention time.Duration
	now       func() time.Time
}

// NewService creates a new leaderboard service
func NewService(repo repository.Leaderboard, cfg Config) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.SnapshotRetention <= 0 {
		cfg.SnapshotRetention = DefaultSnapshotRetention
	}
	return &service{
		repo:      repo,
		loc:       cfg.Location,
		retention: cfg.SnapshotRetention,
		now:       time.Now,
	}
}

func (s *service) currentPeriod(now time.Time) string {
	return now.In(s.loc).Format(domain.CarbonPeriodLayout)
}

func (s *service) GetLeaderboard(ctx context.Context, limit int) (*domain.Leaderboard, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	now := s.now()
	period := s.currentPeriod(now)

	rows, err := s.repo.GetLeaderboardRows(ctx, period, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLeaderboardFailed, err)
	}
	stats, err := s.repo.GetLeaderboardStats(ctx, period)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStatsFailed, err)
	}

	previous, err := s.repo.GetLatestRankSnapshot(ctx)
	if err != nil {
		log.Warn(LogMsgSnapshotUnavailable, "error", err)
		previous = nil
	}

	entries := make([]domain.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		rank := i + 1
		entries = append(entries, domain.LeaderboardEntry{
			Rank:          rank,
			UserID:        row.UserID,
			Name:          row.Name,
			MonthlyCarbon: round2(row.MonthlyCarbon),
			TotalScanned:  row.TotalScanned,
			StreakCount:   row.StreakCount,
			Level:         row.Level,
			Change:        rankChange(rank, row, previous),
		})
	}

	log.Debug(LogMsgRetrievedLeaderboard, "period", period, "entries", len(entries))
	return &domain.Leaderboard{
		Entries: entries,
		Stats: domain.LeaderboardStats{
			TotalUsers:    stats.TotalUsers,
			AverageCarbon: round2(stats.AverageCarbon),
		},
		Period:      period,
		GeneratedAt: now,
	}, nil
}

// rankChange compares against the last snapshot, falling back to the
// activity heuristic for users the snapshot does not know
func rankChange(rank int, row domain.LeaderboardRow, previous map[string]int) domain.RankChange {
	if prev, ok := previous[row.UserID]; ok {
		switch {
		case rank < prev:
			return domain.RankUp
		case rank > prev:
			return domain.RankDown
		default:
			return domain.RankSame
		}
	}
	switch {
	case row.TotalScanned > HeuristicActiveScans:
		return domain.RankUp
	case row.TotalScanned == HeuristicIdleScans:
		return domain.RankDown
	default:
		return domain.RankSame
	}
}

func (s *service) SnapshotRanks(ctx context.Context) error {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	rows, err := s.repo.GetLeaderboardRows(ctx, s.currentPeriod(now), 0)
	if err != nil {
		return fmt.Errorf(ErrMsgSnapshotFailed, err)
	}

	snapshot := make([]domain.RankSnapshot, 0, len(rows))
	for i, row := range rows {
		snapshot = append(snapshot, domain.RankSnapshot{UserID: row.UserID, Rank: i + 1, TakenAt: now})
	}
	if err := s.repo.SaveRankSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf(ErrMsgSnapshotFailed, err)
	}
	log.Info(LogMsgRanksSnapshotted, "users", len(snapshot))

	pruned, err := s.repo.DeleteRankSnapshotsBefore(ctx, now.Add(-s.retention))
	if err != nil {
		log.Warn(LogMsgPruneFailed, "error", err)
		return nil
	}
	if pruned > 0 {
		log.Info(LogMsgSnapshotsPruned, "rows", pruned)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
