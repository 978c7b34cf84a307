package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CarbonScan_Go/internal/database/postgres"
	"github.com/osse101/CarbonScan_Go/internal/repository"
)

// Repositories holds the Postgres-backed stores the services depend on
type Repositories struct {
	User        repository.User
	Leaderboard repository.Leaderboard
}

// InitializeRepositories creates every repository on one shared pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:        postgres.NewUserRepository(dbPool),
		Leaderboard: postgres.NewLeaderboardRepository(dbPool),
	}
}
