package postgres

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarbonScan_Go/internal/database"
	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/testing/pgtest"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	os.Exit(pgtest.Run(m, func(connString string) {
		if connString == "" {
			return
		}
		ctx := context.Background()
		if err := database.Migrate(ctx, connString); err != nil {
			log.Printf("integration tests will skip, migrations failed: %v", err)
			return
		}
		pool, err := database.NewPool(ctx, connString, 10, time.Minute, 5*time.Minute)
		if err != nil {
			log.Printf("integration tests will skip, connect failed: %v", err)
			return
		}
		testPool = pool
	}))
}

// requirePool skips the test without a database and otherwise empties every table
func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testPool == nil {
		pgtest.Skip(t, "")
	}
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE leaderboard_snapshots, reward_transactions, user_achievements, scans, users`)
	require.NoError(t, err)
	return testPool
}

// createTestUser registers a user with a fresh id and returns its state
func createTestUser(t *testing.T, repo *UserRepository, name string) *domain.UserRewardState {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	state := domain.NewUserRewardState(uuid.NewString(), name, name+"@example.com", 100, now)
	require.NoError(t, repo.CreateUser(context.Background(), state))
	return state
}
