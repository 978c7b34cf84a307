package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/repository"
)

const rewardStateColumns = `user_id::text, name, email, monthly_carbon, carbon_period, total_scanned,
	streak_count, best_streak_count, last_scan_date, confirmed_points, unconfirmed_points,
	reward_points, total_points_earned, level, next_level_points, last_monthly_bonus_check,
	monthly_bonuses_earned, created_at, updated_at`

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a freshly registered user and their zeroed reward state
func (r *UserRepository) CreateUser(ctx context.Context, state *domain.UserRewardState) error {
	userUUID, err := parseUserUUID(state.UserID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (user_id, name, email, monthly_carbon, carbon_period, total_scanned,
			streak_count, best_streak_count, last_scan_date, confirmed_points, unconfirmed_points,
			reward_points, total_points_earned, level, next_level_points, last_monthly_bonus_check,
			monthly_bonuses_earned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err = r.db.Exec(ctx, query,
		userUUID, state.Name, state.Email, state.MonthlyCarbon, state.CarbonPeriod, state.TotalScanned,
		state.StreakCount, state.BestStreakCount, state.LastScanDate, state.ConfirmedPoints, state.UnconfirmedPoints,
		state.RewardPoints, state.TotalPointsEarned, state.Level, state.NextLevelPoints, state.LastMonthlyBonusCheck,
		state.MonthlyBonusesEarned, state.CreatedAt, state.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, state.Email)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return nil
}

// GetUserByID returns the user identity or domain.ErrUserNotFound
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	query := `SELECT user_id::text, name, email, created_at FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, userUUID), ErrMsgFailedToGetUser)
}

// GetUserByEmail looks a user up case-insensitively
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT user_id::text, name, email, created_at FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRow(ctx, query, email), ErrMsgFailedToGetUserByMail)
}

func scanUser(row pgx.Row, errMsg string) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &u, nil
}

// GetRewardState loads the reward state without taking a lock
func (r *UserRepository) GetRewardState(ctx context.Context, userID string) (*domain.UserRewardState, error) {
	return loadRewardState(ctx, r.db, userID, false)
}

// ListScans returns up to limit scans, newest first
func (r *UserRepository) ListScans(ctx context.Context, userID string, limit int) ([]domain.Scan, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT scan_id::text, product_name, brand, carbon_estimate, category, confidence, barcode, scanned_at
		FROM scans
		WHERE user_id = $1
		ORDER BY seq DESC
		LIMIT $2
	`
	return queryScans(ctx, r.db, query, userUUID, limitArg(limit))
}

// ListTransactions returns up to limit reward transactions, newest first
func (r *UserRepository) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.RewardTransaction, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT transaction_id::text, type, points, points_type, reason, description, created_at, confirmed_at
		FROM reward_transactions
		WHERE user_id = $1
		ORDER BY seq DESC
		LIMIT $2
	`
	return queryTransactions(ctx, r.db, query, userUUID, limitArg(limit))
}

// BeginTx starts a transaction for one locked read-modify-write of a reward state
func (r *UserRepository) BeginTx(ctx context.Context) (repository.RewardStateTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &rewardStateTx{tx: tx, loadedScans: make(map[string]int)}, nil
}

// loadRewardState reads the user row, the scan history, the unlocked
// achievements and the pending transactions. forUpdate row-locks the user.
func loadRewardState(ctx context.Context, q dbtx, userID string, forUpdate bool) (*domain.UserRewardState, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + rewardStateColumns + ` FROM users WHERE user_id = $1`
	errMsg := ErrMsgFailedToLoadRewardState
	if forUpdate {
		query += ` FOR UPDATE`
		errMsg = ErrMsgFailedToLockRewardState
	}

	var s domain.UserRewardState
	err = q.QueryRow(ctx, query, userUUID).Scan(
		&s.UserID, &s.Name, &s.Email, &s.MonthlyCarbon, &s.CarbonPeriod, &s.TotalScanned,
		&s.StreakCount, &s.BestStreakCount, &s.LastScanDate, &s.ConfirmedPoints, &s.UnconfirmedPoints,
		&s.RewardPoints, &s.TotalPointsEarned, &s.Level, &s.NextLevelPoints, &s.LastMonthlyBonusCheck,
		&s.MonthlyBonusesEarned, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}

	s.Scans, err = queryScans(ctx, q, `
		SELECT scan_id::text, product_name, brand, carbon_estimate, category, confidence, barcode, scanned_at
		FROM scans
		WHERE user_id = $1
		ORDER BY seq
	`, userUUID)
	if err != nil {
		return nil, err
	}

	s.Achievements, err = queryAchievements(ctx, q, userUUID)
	if err != nil {
		return nil, err
	}

	s.RewardTransactions, err = queryTransactions(ctx, q, `
		SELECT transaction_id::text, type, points, points_type, reason, description, created_at, confirmed_at
		FROM reward_transactions
		WHERE user_id = $1 AND points_type = 'unconfirmed' AND confirmed_at IS NULL
		ORDER BY seq
	`, userUUID)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func queryScans(ctx context.Context, q dbtx, query string, args ...any) ([]domain.Scan, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryScans, err)
	}
	defer rows.Close()

	scans := []domain.Scan{}
	for rows.Next() {
		var sc domain.Scan
		var confidence string
		if err := rows.Scan(&sc.ID, &sc.ProductName, &sc.Brand, &sc.CarbonEstimate, &sc.Category,
			&confidence, &sc.Barcode, &sc.Date); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryScans, err)
		}
		sc.Confidence = domain.Confidence(confidence)
		scans = append(scans, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryScans, err)
	}
	return scans, nil
}

func queryAchievements(ctx context.Context, q dbtx, userUUID any) (map[string]domain.Achievement, error) {
	rows, err := q.Query(ctx, `
		SELECT achievement_id, name, description, points, earned_at
		FROM user_achievements
		WHERE user_id = $1
	`, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAchievements, err)
	}
	defer rows.Close()

	achievements := make(map[string]domain.Achievement)
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Points, &a.EarnedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAchievements, err)
		}
		achievements[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryAchievements, err)
	}
	return achievements, nil
}

func queryTransactions(ctx context.Context, q dbtx, query string, args ...any) ([]domain.RewardTransaction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTransactions, err)
	}
	defer rows.Close()

	txs := []domain.RewardTransaction{}
	for rows.Next() {
		var tx domain.RewardTransaction
		var txType, pointsType string
		if err := rows.Scan(&tx.ID, &txType, &tx.Points, &pointsType, &tx.Reason, &tx.Description,
			&tx.Date, &tx.ConfirmedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTransactions, err)
		}
		tx.Type = domain.TransactionType(txType)
		tx.PointsType = domain.PointsType(pointsType)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTransactions, err)
	}
	return txs, nil
}
