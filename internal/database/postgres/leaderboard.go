package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// LeaderboardRepository implements the leaderboard repository for PostgreSQL
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// GetLeaderboardRows returns users ordered for the leaderboard of period
func (r *LeaderboardRepository) GetLeaderboardRows(ctx context.Context, period string, limit int) ([]domain.LeaderboardRow, error) {
	query := `
		SELECT user_id::text, name,
			CASE WHEN carbon_period = $1 THEN monthly_carbon ELSE 0 END AS effective_carbon,
			total_scanned, streak_count, level
		FROM users
		ORDER BY effective_carbon ASC, total_scanned DESC, user_id ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, period, limitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	defer rows.Close()

	result := []domain.LeaderboardRow{}
	for rows.Next() {
		var row domain.LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.Name, &row.MonthlyCarbon, &row.TotalScanned, &row.StreakCount, &row.Level); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryLeaderboard, err)
	}
	return result, nil
}

// GetLeaderboardStats counts every user and averages their effective monthly carbon
func (r *LeaderboardRepository) GetLeaderboardStats(ctx context.Context, period string) (*domain.LeaderboardStats, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(AVG(CASE WHEN carbon_period = $1 THEN monthly_carbon ELSE 0 END), 0)
		FROM users
	`
	var stats domain.LeaderboardStats
	if err := r.db.QueryRow(ctx, query, period).Scan(&stats.TotalUsers, &stats.AverageCarbon); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryStats, err)
	}
	return &stats, nil
}

// SaveRankSnapshot bulk-loads one snapshot with COPY
func (r *LeaderboardRepository) SaveRankSnapshot(ctx context.Context, snapshot []domain.RankSnapshot) error {
	if len(snapshot) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(snapshot))
	for _, s := range snapshot {
		userUUID, err := parseUserUUID(s.UserID)
		if err != nil {
			return err
		}
		rows = append(rows, []any{s.TakenAt, userUUID, s.Rank})
	}

	n, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"leaderboard_snapshots"},
		[]string{"taken_at", "user_id", "rank"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSnapshot, err)
	}

	logger.FromContext(ctx).Info(LogMsgRankSnapshotSaved, "rows", n, "taken_at", snapshot[0].TakenAt)
	return nil
}

// GetLatestRankSnapshot returns the ranks recorded by the newest snapshot
func (r *LeaderboardRepository) GetLatestRankSnapshot(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT user_id::text, rank
		FROM leaderboard_snapshots
		WHERE taken_at = (SELECT MAX(taken_at) FROM leaderboard_snapshots)
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySnapshot, err)
	}
	defer rows.Close()

	ranks := make(map[string]int)
	for rows.Next() {
		var userID string
		var rank int
		if err := rows.Scan(&userID, &rank); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySnapshot, err)
		}
		ranks[userID] = rank
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySnapshot, err)
	}
	return ranks, nil
}

// DeleteRankSnapshotsBefore prunes snapshots older than before
func (r *LeaderboardRepository) DeleteRankSnapshotsBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM leaderboard_snapshots WHERE taken_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPruneSnapshots, err)
	}
	return tag.RowsAffected(), nil
}
