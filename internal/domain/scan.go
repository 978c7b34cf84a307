package domain

import "time"

// ScanResponseSchemaVersion is bumped whenever ScanResponse changes shape
const ScanResponseSchemaVersion = "1"

// Product is the product text a barcode resolves to
type Product struct {
	Barcode     string `json:"barcode"`
	Name        string `json:"name"`
	Brand       string `json:"brand,omitempty"`
	Categories  string `json:"categories,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
	Source      string `json:"source,omitempty"`
}

// ScanRequest is one incoming scan event. UserID may be empty for anonymous scans.
type ScanRequest struct {
	Barcode string
	UserID  string
}

// PointsSummary shows both ledger buckets and level progress
type PointsSummary struct {
	ConfirmedPoints   int `json:"confirmed_points"`
	UnconfirmedPoints int `json:"unconfirmed_points"`
	TotalPoints       int `json:"total_points"`
	TotalPointsEarned int `json:"total_points_earned"`
	NextLevelPoints   int `json:"next_level_points"`
}

// NewAchievement is an achievement unlocked during the current scan
type NewAchievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// MonthlyBonus is the once-per-month bonus awarded during a scan
type MonthlyBonus struct {
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// PendingConfirmationInfo tells the user how many points are still maturing
type PendingConfirmationInfo struct {
	UnconfirmedPoints   int        `json:"unconfirmed_points"`
	PendingTransactions int        `json:"pending_transactions"`
	NextConfirmationAt  *time.Time `json:"next_confirmation_at,omitempty"`
	Message             string     `json:"message"`
}

// RewardsSummary is the rewards block of a scan response
type RewardsSummary struct {
	PointsEarned            int                      `json:"points_earned"`
	PointsType              PointsType               `json:"points_type"`
	Reasons                 []string                 `json:"reasons"`
	PointsSummary           PointsSummary            `json:"points_summary"`
	Level                   int                      `json:"level"`
	LeveledUp               bool                     `json:"leveled_up"`
	NewAchievements         []NewAchievement         `json:"new_achievements"`
	StreakCount             int                      `json:"streak_count"`
	BestStreakCount         int                      `json:"best_streak_count"`
	MonthlyBonus            *MonthlyBonus            `json:"monthly_bonus,omitempty"`
	ConfirmedThisScan       int                      `json:"confirmed_this_scan"`
	SustainabilityTier      string                   `json:"sustainability_tier"`
	PendingConfirmationInfo *PendingConfirmationInfo `json:"pending_confirmation_info,omitempty"`
}

// ScanResponse is the single versioned result of processing one scan.
// Rewards is nil when the scan was not tracked against a user.
type ScanResponse struct {
	SchemaVersion  string          `json:"schema_version"`
	ProductName    string          `json:"product_name"`
	Brand          string          `json:"brand,omitempty"`
	Barcode        string          `json:"barcode"`
	CarbonEstimate string          `json:"carbon_estimate"`
	Category       string          `json:"category"`
	Confidence     Confidence      `json:"confidence"`
	Calculation    string          `json:"calculation"`
	Persisted      bool            `json:"persisted"`
	TrackingError  string          `json:"tracking_error,omitempty"`
	Rewards        *RewardsSummary `json:"rewards,omitempty"`
}
