package user

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
	"github.com/osse101/CarbonScan_Go/internal/repository"
	"github.com/osse101/CarbonScan_Go/internal/rewards"
)

// Service defines the interface for user operations
type Service interface {
	Register(ctx context.Context, name, email string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	GetScanHistory(ctx context.Context, userID string, limit int) ([]domain.Scan, error)
	GetTransactions(ctx context.Context, userID string, limit int) ([]domain.RewardTransaction, error)

	// InvalidateProfile drops the cached profile so the next read reloads it
	InvalidateProfile(userID string)
	GetCacheStats() CacheStats
}

// Config configures the user service
type Config struct {
	Cache CacheConfig
	// Location decides which month's carbon a profile shows
	Location *time.Location
}

// service implements the Service interface
type service struct {
	repo     repository.User
	cache    *profileCache
	validate *validator.Validate
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a new user service
func NewService(repo repository.User, cfg Config) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &service{
		repo:     repo,
		cache:    newProfileCache(cfg.Cache),
		validate: validator.New(),
		loc:      cfg.Location,
		now:      time.Now,
	}
}

func (s *service) Register(ctx context.Context, name, email string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgNameRequired)
	}
	if len([]rune(name)) > MaxNameLength {
		return nil, fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidInput, MaxNameLength)
	}
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgInvalidEmail)
	}

	_, nextLevelPoints := rewards.LevelFor(0)
	now := s.now().UTC()
	state := domain.NewUserRewardState(uuid.NewString(), name, email, nextLevelPoints, now)

	if err := s.repo.CreateUser(ctx, state); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			log.Info(LogMsgDuplicateEmail, "email", email)
		}
		return nil, err
	}

	log.Info(LogMsgUserRegistered, "user_id", state.UserID)
	return &domain.User{
		ID:        state.UserID,
		Name:      state.Name,
		Email:     state.Email,
		CreatedAt: state.CreatedAt,
	}, nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgUserIDRequired)
	}
	if profile, ok := s.cache.Get(userID); ok {
		logger.FromContext(ctx).Debug(LogMsgProfileCacheHit, "user_id", userID)
		return profile, nil
	}

	state, err := s.repo.GetRewardState(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := s.buildProfile(state)
	s.cache.Set(userID, profile)
	return profile, nil
}

// buildProfile derives the profile read model from a stored reward state
func (s *service) buildProfile(state *domain.UserRewardState) *domain.UserProfile {
	monthlyCarbon := state.MonthlyCarbon
	if state.CarbonPeriod != s.now().In(s.loc).Format(domain.CarbonPeriodLayout) {
		monthlyCarbon = 0
	}

	achievements := make([]domain.Achievement, 0, len(state.Achievements))
	for _, a := range state.Achievements {
		achievements = append(achievements, a)
	}
	sort.Slice(achievements, func(i, j int) bool {
		if !achievements[i].EarnedAt.Equal(achievements[j].EarnedAt) {
			return achievements[i].EarnedAt.Before(achievements[j].EarnedAt)
		}
		return achievements[i].ID < achievements[j].ID
	})

	return &domain.UserProfile{
		UserID:              state.UserID,
		Name:                state.Name,
		Email:               state.Email,
		Level:               state.Level,
		StreakCount:         state.StreakCount,
		BestStreakCount:     state.BestStreakCount,
		Points:              rewards.Summary(state),
		MonthlyCarbon:       round2(monthlyCarbon),
		TotalScanned:        state.TotalScanned,
		SustainabilityLevel: rewards.SustainabilityLevel(monthlyCarbon),
		SustainabilityTier:  rewards.SustainabilityTier(monthlyCarbon, state.TotalScanned),
		AchievementCount:    len(achievements),
		Achievements:        achievements,
		CarbonSavedKg:       round2(rewards.CarbonSaved(state.Scans)),
		MemberSince:         state.CreatedAt,
	}
}

func (s *service) GetScanHistory(ctx context.Context, userID string, limit int) ([]domain.Scan, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgUserIDRequired)
	}
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListScans(ctx, userID, clampLimit(limit))
}

func (s *service) GetTransactions(ctx context.Context, userID string, limit int) ([]domain.RewardTransaction, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgUserIDRequired)
	}
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, userID, clampLimit(limit))
}

func (s *service) InvalidateProfile(userID string) {
	s.cache.Invalidate(userID)
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
