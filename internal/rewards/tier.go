package rewards

// Sustainability tiers, best first
const (
	TierPlatinum = "Platinum"
	TierGold     = "Gold"
	TierSilver   = "Silver"
	TierBronze   = "Bronze"
	TierBeginner = "Beginner"
)

// Sustainability levels, derived from monthly carbon alone
const (
	SustainabilityExcellent        = "Excellent"
	SustainabilityGood             = "Good"
	SustainabilityAverage          = "Average"
	SustainabilityNeedsImprovement = "Needs Improvement"
)

// SustainabilityTier is a display label. It plays no part in point math.
func SustainabilityTier(monthlyCarbon float64, totalScanned int) string {
	switch {
	case totalScanned >= 100 && monthlyCarbon < 20:
		return TierPlatinum
	case totalScanned >= 50 && monthlyCarbon < 35:
		return TierGold
	case totalScanned >= 20 && monthlyCarbon < 50:
		return TierSilver
	case totalScanned >= 5:
		return TierBronze
	default:
		return TierBeginner
	}
}

// SustainabilityLevel grades monthly carbon on the profile page
func SustainabilityLevel(monthlyCarbon float64) string {
	switch {
	case monthlyCarbon < 20:
		return SustainabilityExcellent
	case monthlyCarbon < 35:
		return SustainabilityGood
	case monthlyCarbon < 50:
		return SustainabilityAverage
	default:
		return SustainabilityNeedsImprovement
	}
}
