package scan

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/concurrency"
	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
	"github.com/osse101/CarbonScan_Go/internal/metrics"
	"github.com/osse101/CarbonScan_Go/internal/product"
	"github.com/osse101/CarbonScan_Go/internal/repository"
	"github.com/osse101/CarbonScan_Go/internal/rewards"
)

// Service processes barcode scans
type Service interface {
	// ProcessScan resolves the barcode, estimates its footprint and, when the
	// request names a user, applies the rewards pipeline to that user's state.
	// Only input and product resolution failures are returned as errors.
	ProcessScan(ctx context.Context, req domain.ScanRequest) (*domain.ScanResponse, error)
}

// ProfileInvalidator drops cached read models after a user's state changes
type ProfileInvalidator interface {
	InvalidateProfile(userID string)
}

type service struct {
	repo        repository.User
	resolver    product.Resolver
	engine      *rewards.Engine
	locks       *concurrency.LockManager
	invalidator ProfileInvalidator
	now         func() time.Time
}

// NewService creates a scan service. invalidator may be nil.
func NewService(repo repository.User, resolver product.Resolver, engine *rewards.Engine, invalidator ProfileInvalidator) Service {
	return &service{
		repo:        repo,
		resolver:    resolver,
		engine:      engine,
		locks:       concurrency.NewLockManager(),
		invalidator: invalidator,
		now:         time.Now,
	}
}

func (s *service) ProcessScan(ctx context.Context, req domain.ScanRequest) (*domain.ScanResponse, error) {
	log := logger.FromContext(ctx)

	barcode, err := product.ValidateBarcode(req.Barcode)
	if err != nil {
		return nil, err
	}

	p, err := s.resolver.Lookup(ctx, barcode)
	metrics.RecordLookup(err)
	if err != nil {
		log.Warn(LogMsgProductLookupFailed, "barcode", barcode, "error", err)
		return nil, err
	}
	p.Barcode = barcode

	if req.UserID == "" {
		resp := rewards.NewScanResponse(*p, s.engine.Estimate(*p))
		log.Debug(LogMsgAnonymousScan, "barcode", barcode, "category", resp.Category)
		metrics.RecordScan(ctx, resp, nil)
		return resp, nil
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	return s.trackScan(ctx, req.UserID, *p), nil
}

// trackScan runs the rewards pipeline inside one locked read-modify-write.
// It always returns a response: storage failures degrade it instead of failing the scan.
func (s *service) trackScan(ctx context.Context, userID string, p domain.Product) *domain.ScanResponse {
	log := logger.FromContext(ctx).With("user_id", userID, "barcode", p.Barcode)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return s.untracked(ctx, p, err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := tx.GetRewardStateForUpdate(ctx, userID)
	if err != nil {
		return s.untracked(ctx, p, err)
	}

	txCount := len(state.RewardTransactions)
	resp := s.engine.ProcessScan(state, p, s.now())
	newTransactions := state.RewardTransactions[txCount:]

	if err := tx.SaveRewardState(ctx, state); err != nil {
		log.Error(LogMsgRewardStateSave, "error", err)
		return unsaved(ctx, resp, newTransactions, metrics.StageSave)
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error(LogMsgRewardStateCommit, "error", err)
		return unsaved(ctx, resp, newTransactions, metrics.StageCommit)
	}

	resp.Persisted = true
	if s.invalidator != nil {
		s.invalidator.InvalidateProfile(userID)
	}
	metrics.RecordScan(ctx, resp, newTransactions)

	log.Info(LogMsgScanProcessed,
		"points_earned", resp.Rewards.PointsEarned,
		"points_type", resp.Rewards.PointsType,
		"level", resp.Rewards.Level,
		"streak", resp.Rewards.StreakCount)
	return resp
}

// unsaved marks a computed response whose state change was lost at stage
func unsaved(ctx context.Context, resp *domain.ScanResponse, newTransactions []domain.RewardTransaction, stage string) *domain.ScanResponse {
	resp.TrackingError = TrackingErrMsgUnavailable
	metrics.RecordPersistenceFailure(stage)
	metrics.RecordScan(ctx, resp, newTransactions)
	return resp
}

// untracked returns the carbon half of a response with the tracking error set
func (s *service) untracked(ctx context.Context, p domain.Product, err error) *domain.ScanResponse {
	resp := rewards.NewScanResponse(p, s.engine.Estimate(p))
	if errors.Is(err, domain.ErrUserNotFound) {
		resp.TrackingError = TrackingErrMsgUserNotFound
	} else {
		resp.TrackingError = TrackingErrMsgUnavailable
		metrics.RecordPersistenceFailure(metrics.StageLoad)
	}
	logger.FromContext(ctx).Warn(LogMsgRewardStateLoad, "barcode", p.Barcode, "error", err)
	metrics.RecordScan(ctx, resp, nil)
	return resp
}
