package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CarbonScan_Go/internal/carbon"
	"github.com/osse101/CarbonScan_Go/internal/config"
	"github.com/osse101/CarbonScan_Go/internal/leaderboard"
	"github.com/osse101/CarbonScan_Go/internal/product"
	"github.com/osse101/CarbonScan_Go/internal/rewards"
	"github.com/osse101/CarbonScan_Go/internal/scan"
	"github.com/osse101/CarbonScan_Go/internal/scheduler"
	"github.com/osse101/CarbonScan_Go/internal/user"
	"github.com/osse101/CarbonScan_Go/internal/worker"
)

// Services is the wired application graph
type Services struct {
	Engine      *rewards.Engine
	Product     product.Resolver
	User        user.Service
	Scan        scan.Service
	Leaderboard leaderboard.Service
}

// NewProductResolver builds the cached lookup chain: Open Food Facts first,
// then the offline catalog when one can be loaded.
func NewProductResolver(cfg *config.Config) product.Resolver {
	resolvers := []product.Resolver{
		product.NewOpenFoodFactsClient(cfg.ProductAPIBaseURL, cfg.ProductAPITimeout),
	}

	if cfg.ProductFallbackPath != "" {
		catalog, err := product.LoadCatalog(cfg.ProductFallbackPath)
		if err != nil {
			slog.Warn(LogMsgFallbackCatalogUnavailable, "path", cfg.ProductFallbackPath, "error", err)
		} else {
			resolvers = append(resolvers, catalog)
		}
	}

	return product.NewCachedResolver(product.NewChain(resolvers...), cfg.ProductCacheSize, cfg.ProductCacheTTL)
}

// InitializeServices wires the rewards engine and the domain services
func InitializeServices(cfg *config.Config, repos *Repositories, resolver product.Resolver) *Services {
	engine := rewards.NewEngine(carbon.NewEstimator(), rewards.Config{
		Location:          cfg.Location(),
		ConfirmationDelay: cfg.ConfirmationDelay,
	})

	userSvc := user.NewService(repos.User, user.Config{
		Cache:    user.CacheConfig{Size: cfg.ProfileCacheSize, TTL: cfg.ProfileCacheTTL},
		Location: cfg.Location(),
	})

	return &Services{
		Engine:      engine,
		Product:     resolver,
		User:        userSvc,
		Scan:        scan.NewService(repos.User, resolver, engine, userSvc),
		Leaderboard: leaderboard.NewService(repos.Leaderboard, leaderboard.Config{
			Location:          cfg.Location(),
			SnapshotRetention: cfg.SnapshotRetention,
		}),
	}
}

// Background owns the worker pool and the cron scheduler feeding it
type Background struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackground starts the workers and schedules the leaderboard snapshot
func StartBackground(ctx context.Context, cfg *config.Config, lb leaderboard.Service) (*Background, error) {
	pool := worker.NewPool(cfg.WorkerCount, WorkerQueueSize)
	sched := scheduler.New(pool, cfg.Location())

	job := worker.NewLeaderboardSnapshotJob(lb, SnapshotJobTimeout)
	if err := sched.Schedule(worker.JobNameLeaderboardSnapshot, cfg.LeaderboardSnapshotCron, job); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgScheduleSnapshotJob, err)
	}

	pool.Start()
	sched.Start()
	next, _ := sched.NextRun(worker.JobNameLeaderboardSnapshot)
	slog.InfoContext(ctx, LogMsgSnapshotJobScheduled,
		"cron", cfg.LeaderboardSnapshotCron,
		"timezone", cfg.Location().String(),
		"next_run", next)

	return &Background{Pool: pool, Scheduler: sched}, nil
}
