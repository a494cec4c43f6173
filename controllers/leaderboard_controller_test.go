package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utsav/models"
	"utsav/services"
)

func leaderboardTestRouter(dir services.Directory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	lc := NewLeaderboardController(services.NewLeaderboardService(dir))
	r := gin.New()
	r.GET("/api/leaderboard", lc.Get)
	return r
}

func TestLeaderboardEndpoint(t *testing.T) {
	dir := &stubDirectory{responses: []any{
		map[string]any{"queryScore": []models.Score{
			{TotalScore: 40, Team: &models.Team{ID: "T1", Name: "Alpha"}},
			{TotalScore: 90, Team: &models.Team{ID: "T2", Name: "Beta"}},
			{TotalScore: 55, Team: &models.Team{ID: "T1", Name: "Alpha"}},
		}},
	}}
	r := leaderboardTestRouter(dir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var board []models.LeaderboardEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board, 2)
	assert.Equal(t, "T1", board[0].TeamID)
	assert.Equal(t, 95, board[0].TotalScore)
	assert.Equal(t, "T2", board[1].TeamID)
	assert.Equal(t, 90, board[1].TotalScore)
}

func TestLeaderboardEndpointUnknownRound(t *testing.T) {
	dir := &stubDirectory{responses: []any{
		map[string]any{"getRound": nil},
	}}
	r := leaderboardTestRouter(dir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard?roundId=R404", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderboardEndpointEmpty(t *testing.T) {
	dir := &stubDirectory{responses: []any{
		map[string]any{"queryScore": []models.Score{}},
	}}
	r := leaderboardTestRouter(dir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
