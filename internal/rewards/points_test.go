package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePoints(t *testing.T) {
	tests := []struct {
		name          string
		input         PointsInput
		wantPoints    int
		wantConfirmed bool
		wantReasons   []string
	}{
		{
			name:          "first ever scan of a low-carbon product",
			input:         PointsInput{CarbonFootprint: 0.8, IsFirstScan: true, IsFirstScanToday: true, StreakCount: 1},
			wantPoints:    BasePoints + FirstScanBonus + DailyScanBonus + EcoBonus,
			wantConfirmed: true,
			wantReasons:   []string{"base_scan", "first_scan", "daily_scan", "eco_bonus"},
		},
		{
			name:          "repeat scan on the same day stays unconfirmed",
			input:         PointsInput{CarbonFootprint: 3.0, StreakCount: 1, TotalScanned: 3},
			wantPoints:    BasePoints,
			wantConfirmed: false,
			wantReasons:   []string{"base_scan"},
		},
		{
			name:          "first scan of the day with a streak",
			input:         PointsInput{CarbonFootprint: 2.0, IsFirstScanToday: true, StreakCount: 4, TotalScanned: 10},
			wantPoints:    BasePoints + DailyScanBonus + 3*StreakBonusPerDay,
			wantConfirmed: true,
			wantReasons:   []string{"base_scan", "daily_scan", "streak_bonus"},
		},
		{
			name:          "eco bonus alone does not confirm",
			input:         PointsInput{CarbonFootprint: 0.3, StreakCount: 2, TotalScanned: 5},
			wantPoints:    BasePoints + StreakBonusPerDay + EcoBonus,
			wantConfirmed: false,
			wantReasons:   []string{"base_scan", "streak_bonus", "eco_bonus"},
		},
		{
			name:          "milestone scan",
			input:         PointsInput{CarbonFootprint: 1.5, StreakCount: 1, TotalScanned: MilestoneInterval - 1},
			wantPoints:    BasePoints + MilestoneBonus,
			wantConfirmed: false,
			wantReasons:   []string{"base_scan", "milestone_bonus"},
		},
		{
			name:          "carbon exactly at threshold earns no eco bonus",
			input:         PointsInput{CarbonFootprint: EcoThresholdKg, StreakCount: 1, TotalScanned: 2},
			wantPoints:    BasePoints,
			wantConfirmed: false,
			wantReasons:   []string{"base_scan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			award := CalculatePoints(tt.input)

			assert.Equal(t, tt.wantPoints, award.Points)
			assert.Equal(t, tt.wantConfirmed, award.IsConfirmed)
			assert.Equal(t, tt.wantReasons, award.Reasons)
			assert.Len(t, award.Breakdown, len(tt.wantReasons))

			sum := 0
			for _, c := range award.Breakdown {
				sum += c.Points
			}
			assert.Equal(t, award.Points, sum, "breakdown must add up to the award")
		})
	}
}

func TestStreakBonus_NonDecreasing(t *testing.T) {
	prev := StreakBonus(0)
	for streak := 1; streak <= 100; streak++ {
		cur := StreakBonus(streak)
		assert.GreaterOrEqual(t, cur, prev, "streak %d", streak)
		prev = cur
	}
	assert.Equal(t, 0, StreakBonus(1))
	assert.Equal(t, StreakBonusCap*StreakBonusPerDay, StreakBonus(1000))
}

func TestShouldConfirmImmediately(t *testing.T) {
	assert.True(t, ShouldConfirmImmediately(ReasonFirstScan))
	assert.True(t, ShouldConfirmImmediately(ReasonDailyScan))
	assert.False(t, ShouldConfirmImmediately(ReasonBaseScan))
	assert.False(t, ShouldConfirmImmediately(ReasonStreakBonus))
	assert.False(t, ShouldConfirmImmediately(ReasonEcoBonus))
	assert.False(t, ShouldConfirmImmediately(ReasonMilestoneBonus))
}

func TestPointsAward_Description(t *testing.T) {
	award := CalculatePoints(PointsInput{CarbonFootprint: 0.5, IsFirstScan: true, IsFirstScanToday: true, StreakCount: 1})

	assert.Equal(t, "Scan +10, First scan bonus +50, Daily scan bonus +5, Low-carbon choice +5", award.Description())
}
