package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// rewardStateTx is one scan's unit of work. The user row stays locked from
// GetRewardStateForUpdate until Commit or Rollback.
type rewardStateTx struct {
	tx pgx.Tx
	// loadedScans remembers how many scans each locked state already had in the database
	loadedScans map[string]int
}

func (t *rewardStateTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *rewardStateTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetRewardStateForUpdate loads the state with SELECT ... FOR UPDATE on the user row
func (t *rewardStateTx) GetRewardStateForUpdate(ctx context.Context, userID string) (*domain.UserRewardState, error) {
	state, err := loadRewardState(ctx, t.tx, userID, true)
	if err != nil {
		return nil, err
	}
	t.loadedScans[state.UserID] = len(state.Scans)
	return state, nil
}

// SaveRewardState writes the user row and appends the new log entries.
// Scans and achievements are insert-only; transactions are upserted so that
// confirmations of previously pending entries are recorded.
func (t *rewardStateTx) SaveRewardState(ctx context.Context, state *domain.UserRewardState) error {
	userUUID, err := parseUserUUID(state.UserID)
	if err != nil {
		return err
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE users SET
			monthly_carbon = $2, carbon_period = $3, total_scanned = $4,
			streak_count = $5, best_streak_count = $6, last_scan_date = $7,
			confirmed_points = $8, unconfirmed_points = $9, reward_points = $10,
			total_points_earned = $11, level = $12, next_level_points = $13,
			last_monthly_bonus_check = $14, monthly_bonuses_earned = $15, updated_at = $16
		WHERE user_id = $1
	`, userUUID, state.MonthlyCarbon, state.CarbonPeriod, state.TotalScanned,
		state.StreakCount, state.BestStreakCount, state.LastScanDate,
		state.ConfirmedPoints, state.UnconfirmedPoints, state.RewardPoints,
		state.TotalPointsEarned, state.Level, state.NextLevelPoints,
		state.LastMonthlyBonusCheck, state.MonthlyBonusesEarned, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateRewardState, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	batch := &pgx.Batch{}

	loaded := t.loadedScans[state.UserID]
	if loaded > len(state.Scans) {
		loaded = 0
	}
	for _, sc := range state.Scans[loaded:] {
		batch.Queue(`
			INSERT INTO scans (scan_id, user_id, barcode, product_name, brand, carbon_estimate, category, confidence, scanned_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (scan_id) DO NOTHING
		`, sc.ID, userUUID, sc.Barcode, sc.ProductName, sc.Brand, sc.CarbonEstimate, sc.Category, string(sc.Confidence), sc.Date)
	}

	for _, a := range state.Achievements {
		batch.Queue(`
			INSERT INTO user_achievements (user_id, achievement_id, name, description, points, earned_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, achievement_id) DO NOTHING
		`, userUUID, a.ID, a.Name, a.Description, a.Points, a.EarnedAt)
	}

	for _, tx := range state.RewardTransactions {
		batch.Queue(`
			INSERT INTO reward_transactions (transaction_id, user_id, type, points, points_type, reason, description, created_at, confirmed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (transaction_id) DO UPDATE
			SET confirmed_at = EXCLUDED.confirmed_at
		`, tx.ID, userUUID, string(tx.Type), tx.Points, string(tx.PointsType), tx.Reason, tx.Description, tx.Date, tx.ConfirmedAt)
	}

	if batch.Len() == 0 {
		return nil
	}
	if err := t.tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteRewardLog, err)
	}
	t.loadedScans[state.UserID] = len(state.Scans)
	return nil
}
