package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/repository"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	pool := requirePool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	state := createTestUser(t, repo, "alice")

	t.Run("by id", func(t *testing.T) {
		u, err := repo.GetUserByID(ctx, state.UserID)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("by email is case insensitive", func(t *testing.T) {
		u, err := repo.GetUserByEmail(ctx, "ALICE@Example.com")
		require.NoError(t, err)
		assert.Equal(t, state.UserID, u.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := domain.NewUserRewardState(uuid.NewString(), "alice2", "Alice@example.com", 100, time.Now())
		err := repo.CreateUser(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.GetUserByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.GetRewardState(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := repo.GetUserByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestRewardStateTx_SaveAndReload(t *testing.T) {
	pool := requirePool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	state := createTestUser(t, repo, "bob")
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	pendingTx := domain.RewardTransaction{
		ID: uuid.NewString(), Type: domain.TransactionEarned, Points: 20,
		PointsType: domain.PointsUnconfirmed, Reason: "base_scan", Description: "Scan +10", Date: now,
	}
	confirmedTx := domain.RewardTransaction{
		ID: uuid.NewString(), Type: domain.TransactionAchievement, Points: 50,
		PointsType: domain.PointsConfirmed, Reason: "first_scan", Description: "First Scan", Date: now,
	}

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	locked, err := tx.GetRewardStateForUpdate(ctx, state.UserID)
	require.NoError(t, err)

	locked.Scans = append(locked.Scans, domain.Scan{
		ID: uuid.NewString(), ProductName: "Potato Chips", Brand: "Walkers", CarbonEstimate: 0.8,
		Category: "snacks", Confidence: domain.ConfidenceHigh, Barcode: "5000159407236", Date: now,
	})
	locked.TotalScanned = 1
	locked.MonthlyCarbon = 0.8
	locked.CarbonPeriod = "2026-03"
	locked.StreakCount, locked.BestStreakCount = 1, 1
	locked.LastScanDate = &day
	locked.ConfirmedPoints = 50
	locked.UnconfirmedPoints = 20
	locked.TotalPointsEarned = 70
	locked.Achievements["first_scan"] = domain.Achievement{ID: "first_scan", Name: "First Scan", Points: 50, EarnedAt: now}
	locked.RewardTransactions = append(locked.RewardTransactions, pendingTx, confirmedTx)
	locked.UpdatedAt = now

	require.NoError(t, tx.SaveRewardState(ctx, locked))
	require.NoError(t, tx.Commit(ctx))
	repository.SafeRollback(ctx, tx)

	got, err := repo.GetRewardState(ctx, state.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalScanned)
	assert.InDelta(t, 0.8, got.MonthlyCarbon, 1e-9)
	assert.Equal(t, "2026-03", got.CarbonPeriod)
	require.NotNil(t, got.LastScanDate)
	assert.True(t, day.Equal(*got.LastScanDate))
	require.Len(t, got.Scans, 1)
	assert.Equal(t, domain.ConfidenceHigh, got.Scans[0].Confidence)
	assert.True(t, got.HasAchievement("first_scan"))
	require.Len(t, got.RewardTransactions, 1, "only pending transactions are loaded")
	assert.Equal(t, pendingTx.ID, got.RewardTransactions[0].ID)

	all, err := repo.ListTransactions(ctx, state.UserID, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, confirmedTx.ID, all[0].ID, "newest first")

	// confirm the pending entry in a second unit of work
	tx2, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx2)
	locked, err = tx2.GetRewardStateForUpdate(ctx, state.UserID)
	require.NoError(t, err)
	confirmedAt := now.Add(25 * time.Hour)
	locked.RewardTransactions[0].ConfirmedAt = &confirmedAt
	locked.UnconfirmedPoints = 0
	locked.ConfirmedPoints = 70
	require.NoError(t, tx2.SaveRewardState(ctx, locked))
	require.NoError(t, tx2.Commit(ctx))

	got, err = repo.GetRewardState(ctx, state.UserID)
	require.NoError(t, err)
	assert.Empty(t, got.RewardTransactions)
	assert.Equal(t, 70, got.ConfirmedPoints)
	assert.Len(t, got.Scans, 1, "scans are not duplicated on a second save")
}

func TestRewardStateTx_RollbackDiscardsChanges(t *testing.T) {
	pool := requirePool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()
	state := createTestUser(t, repo, "carol")

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	locked, err := tx.GetRewardStateForUpdate(ctx, state.UserID)
	require.NoError(t, err)
	locked.TotalScanned = 99
	require.NoError(t, tx.SaveRewardState(ctx, locked))
	repository.SafeRollback(ctx, tx)

	got, err := repo.GetRewardState(ctx, state.UserID)
	require.NoError(t, err)
	assert.Zero(t, got.TotalScanned)
}

// TestRewardStateTx_SerializesConcurrentWriters checks that the row lock
// prevents lost updates when scans for one user race
func TestRewardStateTx_SerializesConcurrentWriters(t *testing.T) {
	pool := requirePool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()
	state := createTestUser(t, repo, "dave")

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- func() error {
				tx, err := repo.BeginTx(ctx)
				if err != nil {
					return err
				}
				defer repository.SafeRollback(ctx, tx)
				s, err := tx.GetRewardStateForUpdate(ctx, state.UserID)
				if err != nil {
					return err
				}
				s.TotalScanned++
				s.Scans = append(s.Scans, domain.Scan{
					ID: uuid.NewString(), ProductName: "Oat Milk", CarbonEstimate: 0.9,
					Category: "dairy", Confidence: domain.ConfidenceMedium, Barcode: "12345678", Date: time.Now(),
				})
				if err := tx.SaveRewardState(ctx, s); err != nil {
					return err
				}
				return tx.Commit(ctx)
			}()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetRewardState(ctx, state.UserID)
	require.NoError(t, err)
	assert.Equal(t, writers, got.TotalScanned)
	assert.Len(t, got.Scans, writers)

	history, err := repo.ListScans(ctx, state.UserID, 3)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}
