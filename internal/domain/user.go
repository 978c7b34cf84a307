package domain

import "time"

// User is the registered identity behind a reward state
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile is the read model returned by the profile endpoint
type UserProfile struct {
	UserID              string        `json:"user_id"`
	Name                string        `json:"name"`
	Email               string        `json:"email"`
	Level               int           `json:"level"`
	StreakCount         int           `json:"streak_count"`
	BestStreakCount     int           `json:"best_streak_count"`
	Points              PointsSummary `json:"points"`
	MonthlyCarbon       float64       `json:"monthly_carbon"`
	TotalScanned        int           `json:"total_scanned"`
	SustainabilityLevel string        `json:"sustainability_level"`
	SustainabilityTier  string        `json:"sustainability_tier"`
	AchievementCount    int           `json:"achievement_count"`
	Achievements        []Achievement `json:"achievements"`
	CarbonSavedKg       float64       `json:"carbon_saved_kg"`
	MemberSince         time.Time     `json:"member_since"`
}
