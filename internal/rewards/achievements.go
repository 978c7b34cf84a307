package rewards

import (
	"github.com/osse101/CarbonScan_Go/internal/domain"
)

// AchievementDefinition is one entry of the fixed achievement catalog
type AchievementDefinition struct {
	ID          string
	Name        string
	Description string
	Points      int
	Predicate   func(*domain.UserRewardState) bool
}

func scansAtLeast(n int) func(*domain.UserRewardState) bool {
	return func(s *domain.UserRewardState) bool { return s.TotalScanned >= n }
}

func streakAtLeast(n int) func(*domain.UserRewardState) bool {
	return func(s *domain.UserRewardState) bool { return s.StreakCount >= n }
}

func ecoChoicesAtLeast(n int) func(*domain.UserRewardState) bool {
	return func(s *domain.UserRewardState) bool { return LowCarbonScans(s.Scans) >= n }
}

func carbonSavedAtLeast(kg float64) func(*domain.UserRewardState) bool {
	return func(s *domain.UserRewardState) bool { return CarbonSaved(s.Scans) >= kg }
}

func levelAtLeast(n int) func(*domain.UserRewardState) bool {
	return func(s *domain.UserRewardState) bool { return s.Level >= n }
}

// Catalog is evaluated in order on every scan
var Catalog = []AchievementDefinition{
	{ID: "first_scan", Name: "First Steps", Description: "Scan your first product", Points: 10, Predicate: scansAtLeast(1)},
	{ID: "scans_10", Name: "Getting Started", Description: "Scan 10 products", Points: 25, Predicate: scansAtLeast(10)},
	{ID: "scans_50", Name: "Dedicated Scanner", Description: "Scan 50 products", Points: 75, Predicate: scansAtLeast(50)},
	{ID: "scans_100", Name: "Century Scanner", Description: "Scan 100 products", Points: 150, Predicate: scansAtLeast(100)},
	{ID: "streak_3", Name: "On a Roll", Description: "Scan 3 days in a row", Points: 20, Predicate: streakAtLeast(3)},
	{ID: "streak_7", Name: "Week Warrior", Description: "Scan 7 days in a row", Points: 50, Predicate: streakAtLeast(7)},
	{ID: "streak_30", Name: "Consistency Champion", Description: "Scan 30 days in a row", Points: 200, Predicate: streakAtLeast(30)},
	{ID: "eco_choices_10", Name: "Eco Shopper", Description: "Scan 10 low-carbon products", Points: 50, Predicate: ecoChoicesAtLeast(10)},
	{ID: "carbon_saved_5", Name: "Carbon Cutter", Description: "Save 5 kg CO2e against the average product", Points: 40, Predicate: carbonSavedAtLeast(5)},
	{ID: "carbon_saved_25", Name: "Climate Champion", Description: "Save 25 kg CO2e against the average product", Points: 120, Predicate: carbonSavedAtLeast(25)},
	{ID: "level_5", Name: "Rising Star", Description: "Reach level 5", Points: 50, Predicate: levelAtLeast(5)},
}

// EvaluateAchievements returns the catalog entries whose predicate holds and
// whose id the user does not hold yet. It does not modify state.
func EvaluateAchievements(state *domain.UserRewardState, catalog []AchievementDefinition) []AchievementDefinition {
	var unlocked []AchievementDefinition
	for _, def := range catalog {
		if state.HasAchievement(def.ID) {
			continue
		}
		if def.Predicate(state) {
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}

// LowCarbonScans counts scans below the eco threshold
func LowCarbonScans(scans []domain.Scan) int {
	n := 0
	for _, s := range scans {
		if s.CarbonEstimate < EcoThresholdKg {
			n++
		}
	}
	return n
}

// CarbonSaved sums how far each scan came in under the reference product
func CarbonSaved(scans []domain.Scan) float64 {
	saved := 0.0
	for _, s := range scans {
		if s.CarbonEstimate < ReferenceCarbonKg {
			saved += ReferenceCarbonKg - s.CarbonEstimate
		}
	}
	return saved
}
