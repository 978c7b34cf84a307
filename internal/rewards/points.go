package rewards

import (
	"fmt"
	"strings"
)

// ReasonKind identifies one component of a scan's point award
type ReasonKind string

const (
	ReasonBaseScan       ReasonKind = "base_scan"
	ReasonFirstScan      ReasonKind = "first_scan"
	ReasonDailyScan      ReasonKind = "daily_scan"
	ReasonStreakBonus    ReasonKind = "streak_bonus"
	ReasonEcoBonus       ReasonKind = "eco_bonus"
	ReasonMilestoneBonus ReasonKind = "milestone_bonus"
)

// PointsInput is what the calculator needs to know about the scan and the user
type PointsInput struct {
	CarbonFootprint  float64
	IsFirstScan      bool
	IsFirstScanToday bool
	StreakCount      int
	// TotalScanned is the count before this scan
	TotalScanned int
}

// PointsComponent is one contributing part of an award
type PointsComponent struct {
	Kind        ReasonKind
	Points      int
	Description string
}

// PointsAward is the result of CalculatePoints
type PointsAward struct {
	Points      int
	IsConfirmed bool
	Reasons     []string
	Breakdown   []PointsComponent
}

// ShouldConfirmImmediately reports whether points earned for this reason skip maturation
func ShouldConfirmImmediately(kind ReasonKind) bool {
	switch kind {
	case ReasonFirstScan, ReasonDailyScan:
		return true
	default:
		return false
	}
}

// StreakBonus returns the bonus for a streak length. It is non-decreasing in streak.
func StreakBonus(streak int) int {
	if streak < 2 {
		return 0
	}
	days := streak - 1
	if days > StreakBonusCap {
		days = StreakBonusCap
	}
	return days * StreakBonusPerDay
}

// CalculatePoints computes the award for one scan. The award is confirmed
// when any contributing component confirms immediately.
func CalculatePoints(in PointsInput) PointsAward {
	components := []PointsComponent{
		{Kind: ReasonBaseScan, Points: BasePoints, Description: "Scan"},
	}

	if in.IsFirstScan {
		components = append(components, PointsComponent{Kind: ReasonFirstScan, Points: FirstScanBonus, Description: "First scan bonus"})
	}
	if in.IsFirstScanToday {
		components = append(components, PointsComponent{Kind: ReasonDailyScan, Points: DailyScanBonus, Description: "Daily scan bonus"})
	}
	if bonus := StreakBonus(in.StreakCount); bonus > 0 {
		components = append(components, PointsComponent{
			Kind:        ReasonStreakBonus,
			Points:      bonus,
			Description: fmt.Sprintf("%d day streak", in.StreakCount),
		})
	}
	if in.CarbonFootprint < EcoThresholdKg {
		components = append(components, PointsComponent{Kind: ReasonEcoBonus, Points: EcoBonus, Description: "Low-carbon choice"})
	}
	if (in.TotalScanned+1)%MilestoneInterval == 0 {
		components = append(components, PointsComponent{
			Kind:        ReasonMilestoneBonus,
			Points:      MilestoneBonus,
			Description: fmt.Sprintf("%d scans milestone", in.TotalScanned+1),
		})
	}

	award := PointsAward{
		Reasons:   make([]string, 0, len(components)),
		Breakdown: components,
	}
	for _, c := range components {
		award.Points += c.Points
		award.Reasons = append(award.Reasons, string(c.Kind))
		if ShouldConfirmImmediately(c.Kind) {
			award.IsConfirmed = true
		}
	}
	return award
}

// Description renders the breakdown for a transaction record
func (a PointsAward) Description() string {
	parts := make([]string, 0, len(a.Breakdown))
	for _, c := range a.Breakdown {
		parts = append(parts, fmt.Sprintf("%s +%d", c.Description, c.Points))
	}
	return strings.Join(parts, ", ")
}
