package rewards

import "time"

// ============================================================================
// Points
// ============================================================================

// Per-scan point components
const (
	BasePoints        = 10
	FirstScanBonus    = 50
	DailyScanBonus    = 5
	StreakBonusPerDay = 2
	// StreakBonusCap caps the number of streak days that earn a streak bonus
	StreakBonusCap    = 10
	EcoBonus          = 5
	MilestoneInterval = 25
	MilestoneBonus    = 15
)

// EcoThresholdKg is the carbon estimate below which a scan counts as a low-carbon choice
const EcoThresholdKg = 1.0

// ReferenceCarbonKg is the average product footprint used to compute carbon saved
const ReferenceCarbonKg = 2.0

// ============================================================================
// Bonuses
// ============================================================================

// LevelUpBonus is awarded, confirmed, for every level gained
const LevelUpBonus = 25

// MonthlyBonusPoints is awarded, confirmed, once per calendar month
const MonthlyBonusPoints = 100

// DefaultConfirmationDelay is how long unconfirmed points mature before moving to the confirmed bucket
const DefaultConfirmationDelay = 24 * time.Hour

// ============================================================================
// Levels
// ============================================================================

// LevelThresholds holds the lifetime points needed for levels 1..len(LevelThresholds)
var LevelThresholds = []int{0, 100, 250, 500, 1000, 2000, 3500, 5000, 7500, 10000}

// PointsPerLevelAfterTable is the cost of each level past the last threshold
const PointsPerLevelAfterTable = 5000

// ============================================================================
// Transaction reasons
// ============================================================================

const (
	ReasonLevelUp      = "level_up"
	ReasonMonthlyBonus = "monthly_bonus"
)

// ============================================================================
// Messages
// ============================================================================

const (
	MsgLevelUpFormat      = "Reached level %d"
	MsgAchievementFormat  = "Achievement unlocked: %s"
	MsgMonthlyBonusFormat = "Monthly bonus for %s"
	MsgPendingFormat      = "%d points pending confirmation"
)

// Log messages
const (
	LogMsgLedgerImbalance = "Unconfirmed balance lower than pending transaction, clamping"
)
