package handler

import (
	"net/http"

	"github.com/osse101/CarbonScan_Go/internal/leaderboard"
	"github.com/osse101/CarbonScan_Go/internal/rewards"
)

// AchievementInfo describes one catalog entry
type AchievementInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// AchievementCatalogResponse lists every achievement a user can unlock
type AchievementCatalogResponse struct {
	Achievements []AchievementInfo `json:"achievements"`
}

// HandleGetLeaderboard returns the monthly carbon leaderboard
// @Summary Get leaderboard
// @Description Users ordered by this month's carbon footprint, lowest first
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries (default 10, max 100)"
// @Success 200 {object} domain.Leaderboard
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := limitQuery(w, r)
		if !ok {
			return
		}

		board, err := svc.GetLeaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, OpGetLeaderboard, err)
			return
		}
		respondJSON(w, http.StatusOK, board)
	}
}

// HandleGetAchievements returns the achievement catalog
// @Summary Get achievement catalog
// @Tags leaderboard
// @Produce json
// @Success 200 {object} AchievementCatalogResponse
// @Router /achievements [get]
func HandleGetAchievements(catalog []rewards.AchievementDefinition) http.HandlerFunc {
	// The catalog is fixed for the process lifetime
	resp := AchievementCatalogResponse{Achievements: make([]AchievementInfo, 0, len(catalog))}
	for _, def := range catalog {
		resp.Achievements = append(resp.Achievements, AchievementInfo{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Points:      def.Points,
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, resp)
	}
}
