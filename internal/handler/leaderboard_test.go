package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/rewards"
)

func TestHandleGetLeaderboard(t *testing.T) {
	board := &domain.Leaderboard{
		Entries: []domain.LeaderboardEntry{
			{Rank: 1, UserID: testUserID, Name: "Ada", MonthlyCarbon: 4.5, TotalScanned: 12, Change: domain.RankUp},
		},
		Stats:       domain.LeaderboardStats{TotalUsers: 1, AverageCarbon: 4.5},
		Period:      "2026-04",
		GeneratedAt: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockLeaderboardService)
		svc.On("GetLeaderboard", mock.Anything, 5).Return(board, nil)

		req := httptest.NewRequest(http.MethodGet, "/leaderboard?limit=5", nil)
		w := httptest.NewRecorder()
		HandleGetLeaderboard(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var decoded domain.Leaderboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
		require.Len(t, decoded.Entries, 1)
		assert.Equal(t, domain.RankUp, decoded.Entries[0].Change)
		assert.Equal(t, "2026-04", decoded.Period)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid limit", func(t *testing.T) {
		svc := new(MockLeaderboardService)
		req := httptest.NewRequest(http.MethodGet, "/leaderboard?limit=abc", nil)
		w := httptest.NewRecorder()
		HandleGetLeaderboard(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetLeaderboard", mock.Anything, mock.Anything)
	})

	t.Run("Store failure", func(t *testing.T) {
		svc := new(MockLeaderboardService)
		svc.On("GetLeaderboard", mock.Anything, 0).Return(nil, errors.New("connection reset"))

		req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
		w := httptest.NewRecorder()
		HandleGetLeaderboard(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
	})
}

func TestHandleGetAchievements(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/achievements", nil)
	w := httptest.NewRecorder()

	HandleGetAchievements(rewards.Catalog).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AchievementCatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Achievements, len(rewards.Catalog))
	assert.Equal(t, rewards.Catalog[0].ID, resp.Achievements[0].ID)
	assert.Equal(t, rewards.Catalog[0].Points, resp.Achievements[0].Points)
	assert.NotContains(t, w.Body.String(), "predicate")
}
