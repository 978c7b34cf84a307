package domain

import "time"

// RankChange describes movement since the last rank snapshot
type RankChange string

const (
	RankUp   RankChange = "up"
	RankDown RankChange = "down"
	RankSame RankChange = "same"
)

// LeaderboardRow is the raw ordering produced by the store
type LeaderboardRow struct {
	UserID        string
	Name          string
	MonthlyCarbon float64
	TotalScanned  int
	StreakCount   int
	Level         int
}

// LeaderboardEntry is one ranked user on the carbon leaderboard
type LeaderboardEntry struct {
	Rank          int        `json:"rank"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	MonthlyCarbon float64    `json:"monthly_carbon"`
	TotalScanned  int        `json:"total_scanned"`
	StreakCount   int        `json:"streak_count"`
	Level         int        `json:"level"`
	Change        RankChange `json:"change"`
}

// LeaderboardStats summarizes all ranked users
type LeaderboardStats struct {
	TotalUsers    int     `json:"total_users"`
	AverageCarbon float64 `json:"average_carbon"`
}

// Leaderboard is the response of the leaderboard endpoint
type Leaderboard struct {
	Entries     []LeaderboardEntry `json:"entries"`
	Stats       LeaderboardStats   `json:"stats"`
	Period      string             `json:"period"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// RankSnapshot records a user's rank at a point in time
type RankSnapshot struct {
	UserID  string
	Rank    int
	TakenAt time.Time
}
