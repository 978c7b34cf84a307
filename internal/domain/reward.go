package domain

import "time"

// TransactionType identifies what produced a reward transaction
type TransactionType string

const (
	TransactionEarned       TransactionType = "earned"
	TransactionLevelUp      TransactionType = "level_up"
	TransactionAchievement  TransactionType = "achievement"
	TransactionMonthlyBonus TransactionType = "monthly_bonus"
)

// PointsType identifies the ledger bucket a transaction was placed in
type PointsType string

const (
	PointsConfirmed   PointsType = "confirmed"
	PointsUnconfirmed PointsType = "unconfirmed"
)

// Confidence describes how directly product text matched a carbon category
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// CarbonPeriodLayout formats the period key that MonthlyCarbon belongs to
const CarbonPeriodLayout = "2006-01"

// Scan is one entry of a user's append-only scan history
type Scan struct {
	ID             string     `json:"id"`
	ProductName    string     `json:"product_name"`
	Brand          string     `json:"brand,omitempty"`
	CarbonEstimate float64    `json:"carbon_estimate"`
	Category       string     `json:"category"`
	Confidence     Confidence `json:"confidence"`
	Barcode        string     `json:"barcode"`
	Date           time.Time  `json:"date"`
}

// Achievement is an unlocked achievement stored on the user
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	EarnedAt    time.Time `json:"earned_at"`
}

// RewardTransaction is one entry of the append-only points audit log.
// ConfirmedAt is set when an unconfirmed transaction matures.
type RewardTransaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Points      int             `json:"points"`
	PointsType  PointsType      `json:"points_type"`
	Reason      string          `json:"reason"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
}

// IsPending reports whether the transaction still holds unconfirmed points
func (t RewardTransaction) IsPending() bool {
	return t.PointsType == PointsUnconfirmed && t.ConfirmedAt == nil
}

// UserRewardState is the full per-user state read and written by each scan
type UserRewardState struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`

	MonthlyCarbon float64 `json:"monthly_carbon"`
	CarbonPeriod  string  `json:"carbon_period"`
	TotalScanned  int     `json:"total_scanned"`

	StreakCount     int        `json:"streak_count"`
	BestStreakCount int        `json:"best_streak_count"`
	LastScanDate    *time.Time `json:"last_scan_date,omitempty"`

	ConfirmedPoints   int `json:"confirmed_points"`
	UnconfirmedPoints int `json:"unconfirmed_points"`
	RewardPoints      int `json:"reward_points"`
	TotalPointsEarned int `json:"total_points_earned"`
	Level             int `json:"level"`
	NextLevelPoints   int `json:"next_level_points"`

	Achievements       map[string]Achievement `json:"achievements"`
	RewardTransactions []RewardTransaction    `json:"reward_transactions"`

	LastMonthlyBonusCheck *time.Time `json:"last_monthly_bonus_check,omitempty"`
	MonthlyBonusesEarned  int        `json:"monthly_bonuses_earned"`

	Scans []Scan `json:"scans"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserRewardState creates the zeroed state for a freshly registered user.
// nextLevelPoints is the lifetime total needed for level 2.
func NewUserRewardState(userID, name, email string, nextLevelPoints int, now time.Time) *UserRewardState {
	return &UserRewardState{
		UserID:             userID,
		Name:               name,
		Email:              email,
		Level:              1,
		NextLevelPoints:    nextLevelPoints,
		Achievements:       make(map[string]Achievement),
		RewardTransactions: []RewardTransaction{},
		Scans:              []Scan{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// HasAchievement reports whether the achievement id is already unlocked
func (s *UserRewardState) HasAchievement(id string) bool {
	_, ok := s.Achievements[id]
	return ok
}

// PendingTransactions returns the transactions still waiting for confirmation
func (s *UserRewardState) PendingTransactions() []RewardTransaction {
	var pending []RewardTransaction
	for _, tx := range s.RewardTransactions {
		if tx.IsPending() {
			pending = append(pending, tx)
		}
	}
	return pending
}
