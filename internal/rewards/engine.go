package rewards

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CarbonScan_Go/internal/carbon"
	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// Config tunes the engine. Zero values fall back to UTC, DefaultConfirmationDelay and Catalog.
type Config struct {
	Location          *time.Location
	ConfirmationDelay time.Duration
	Catalog           []AchievementDefinition
}

// Engine turns one scan into an updated reward state and a response.
// It performs no I/O; callers load and persist the state around ProcessScan.
type Engine struct {
	estimator         *carbon.Estimator
	loc               *time.Location
	confirmationDelay time.Duration
	catalog           []AchievementDefinition
}

// NewEngine creates a rewards engine
func NewEngine(estimator *carbon.Estimator, cfg Config) *Engine {
	if estimator == nil {
		estimator = carbon.NewEstimator()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.ConfirmationDelay <= 0 {
		cfg.ConfirmationDelay = DefaultConfirmationDelay
	}
	if cfg.Catalog == nil {
		cfg.Catalog = Catalog
	}
	return &Engine{
		estimator:         estimator,
		loc:               cfg.Location,
		confirmationDelay: cfg.ConfirmationDelay,
		catalog:           cfg.Catalog,
	}
}

// Location returns the time zone calendar days are evaluated in
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Catalog returns the achievement catalog the engine evaluates
func (e *Engine) Catalog() []AchievementDefinition {
	return e.catalog
}

// Estimate classifies a resolved product
func (e *Engine) Estimate(p domain.Product) carbon.Estimate {
	return e.estimator.Estimate(carbon.ProductText{
		Name:        p.Name,
		Brand:       p.Brand,
		Categories:  p.Categories,
		Ingredients: p.Ingredients,
	})
}

// NewScanResponse builds the carbon half of a response. Rewards stay nil.
func NewScanResponse(p domain.Product, est carbon.Estimate) *domain.ScanResponse {
	return &domain.ScanResponse{
		SchemaVersion:  domain.ScanResponseSchemaVersion,
		ProductName:    p.Name,
		Brand:          p.Brand,
		Barcode:        p.Barcode,
		CarbonEstimate: strconv.FormatFloat(est.CarbonFootprint, 'f', 2, 64),
		Category:       est.Category,
		Confidence:     est.Confidence,
		Calculation:    est.Calculation,
	}
}

// ProcessScan applies one scan to state and returns the full response.
// Steps run in a fixed order: estimate, confirm matured points, record the
// scan, update carbon totals, track the streak, award scan points, then level
// ups, achievements and the monthly bonus, each with its own transaction.
func (e *Engine) ProcessScan(state *domain.UserRewardState, p domain.Product, now time.Time) *domain.ScanResponse {
	est := e.Estimate(p)
	resp := NewScanResponse(p, est)

	if state.Level < 1 {
		state.Level = 1
	}
	if state.Achievements == nil {
		state.Achievements = make(map[string]domain.Achievement)
	}
	startLevel := state.Level

	ledger := ConfirmMatured(state, now, e.confirmationDelay)

	state.Scans = append(state.Scans, domain.Scan{
		ID:             uuid.NewString(),
		ProductName:    p.Name,
		Brand:          p.Brand,
		CarbonEstimate: est.CarbonFootprint,
		Category:       est.Category,
		Confidence:     est.Confidence,
		Barcode:        p.Barcode,
		Date:           now,
	})

	period := now.In(e.loc).Format(domain.CarbonPeriodLayout)
	if state.CarbonPeriod != period {
		state.MonthlyCarbon = 0
		state.CarbonPeriod = period
	}
	state.MonthlyCarbon += est.CarbonFootprint
	scannedBefore := state.TotalScanned
	state.TotalScanned++

	streak := TrackStreak(state, now, e.loc)

	award := CalculatePoints(PointsInput{
		CarbonFootprint:  est.CarbonFootprint,
		IsFirstScan:      scannedBefore == 0,
		IsFirstScanToday: streak.IsFirstScanToday(),
		StreakCount:      state.StreakCount,
		TotalScanned:     scannedBefore,
	})
	pointsType := e.credit(state, domain.TransactionEarned, award.Points, award.IsConfirmed,
		strings.Join(award.Reasons, ","), award.Description(), now)

	e.applyLevelUps(state, now)
	unlocked := e.awardAchievements(state, now)
	e.applyLevelUps(state, now)

	bonus := CheckMonthlyBonus(state, now, e.loc)
	if bonus != nil {
		e.credit(state, domain.TransactionMonthlyBonus, bonus.Points, true, ReasonMonthlyBonus, bonus.Reason, now)
		state.MonthlyBonusesEarned++
		checked := now
		state.LastMonthlyBonusCheck = &checked
		e.applyLevelUps(state, now)
	}
	state.UpdatedAt = now

	resp.Rewards = &domain.RewardsSummary{
		PointsEarned:            award.Points,
		PointsType:              pointsType,
		Reasons:                 award.Reasons,
		PointsSummary:           Summary(state),
		Level:                   state.Level,
		LeveledUp:               state.Level > startLevel,
		NewAchievements:         unlocked,
		StreakCount:             state.StreakCount,
		BestStreakCount:         state.BestStreakCount,
		MonthlyBonus:            bonus,
		ConfirmedThisScan:       ledger.ConfirmedPoints,
		SustainabilityTier:      SustainabilityTier(state.MonthlyCarbon, state.TotalScanned),
		PendingConfirmationInfo: e.PendingInfo(state),
	}
	return resp
}

// credit places points into one bucket and appends the matching transaction
func (e *Engine) credit(state *domain.UserRewardState, txType domain.TransactionType, points int, confirmed bool, reason, description string, now time.Time) domain.PointsType {
	tx := domain.RewardTransaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Points:      points,
		Reason:      reason,
		Description: description,
		Date:        now,
	}
	if confirmed {
		confirmedAt := now
		tx.PointsType = domain.PointsConfirmed
		tx.ConfirmedAt = &confirmedAt
		state.ConfirmedPoints += points
	} else {
		tx.PointsType = domain.PointsUnconfirmed
		state.UnconfirmedPoints += points
	}
	state.TotalPointsEarned += points
	state.RewardPoints = state.ConfirmedPoints + state.UnconfirmedPoints
	state.RewardTransactions = append(state.RewardTransactions, tx)
	return tx.PointsType
}

// applyLevelUps brings Level in line with TotalPointsEarned, crediting one
// bonus per level gained. Bonuses can cross further thresholds, so it loops.
func (e *Engine) applyLevelUps(state *domain.UserRewardState, now time.Time) {
	for {
		level, next := LevelFor(state.TotalPointsEarned)
		state.NextLevelPoints = next
		if level <= state.Level {
			return
		}
		from := state.Level
		state.Level = level
		for l := from + 1; l <= level; l++ {
			e.credit(state, domain.TransactionLevelUp, LevelUpBonus, true, ReasonLevelUp, fmt.Sprintf(MsgLevelUpFormat, l), now)
		}
	}
}

// awardAchievements unlocks every newly satisfied catalog entry. The id
// check in EvaluateAchievements keeps repeated runs from double-awarding.
func (e *Engine) awardAchievements(state *domain.UserRewardState, now time.Time) []domain.NewAchievement {
	unlocked := make([]domain.NewAchievement, 0)
	for _, def := range EvaluateAchievements(state, e.catalog) {
		state.Achievements[def.ID] = domain.Achievement{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Points:      def.Points,
			EarnedAt:    now,
		}
		e.credit(state, domain.TransactionAchievement, def.Points, true, def.ID, fmt.Sprintf(MsgAchievementFormat, def.Name), now)
		unlocked = append(unlocked, domain.NewAchievement{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Points:      def.Points,
		})
	}
	return unlocked
}

// PendingInfo describes points still waiting to mature, or nil when there are none
func (e *Engine) PendingInfo(state *domain.UserRewardState) *domain.PendingConfirmationInfo {
	if state.UnconfirmedPoints <= 0 {
		return nil
	}
	return &domain.PendingConfirmationInfo{
		UnconfirmedPoints:   state.UnconfirmedPoints,
		PendingTransactions: len(state.PendingTransactions()),
		NextConfirmationAt:  NextConfirmationAt(state, e.confirmationDelay),
		Message:             fmt.Sprintf(MsgPendingFormat, state.UnconfirmedPoints),
	}
}

// Summary reports both ledger buckets and level progress
func Summary(state *domain.UserRewardState) domain.PointsSummary {
	return domain.PointsSummary{
		ConfirmedPoints:   state.ConfirmedPoints,
		UnconfirmedPoints: state.UnconfirmedPoints,
		TotalPoints:       state.ConfirmedPoints + state.UnconfirmedPoints,
		TotalPointsEarned: state.TotalPointsEarned,
		NextLevelPoints:   state.NextLevelPoints,
	}
}
