package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utsav/models"
	"utsav/services"
)

// stubDirectory replays scripted responses in call order.
type stubDirectory struct {
	calls     int
	responses []any
	err       error
}

func (s *stubDirectory) Run(ctx context.Context, query string, vars map[string]any, out any) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	if len(s.responses) == 0 {
		return fmt.Errorf("stub directory: no scripted response for call %d", s.calls)
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	if out == nil {
		return nil
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func scoreTestRouter(dir services.Directory, policy services.SubmitPolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sc := NewScoreController(services.NewScoreService(dir, policy))
	r := gin.New()
	r.POST("/api/scores", sc.Submit)
	r.PUT("/api/scores/:id", sc.Amend)
	r.GET("/api/scores/round/:roundId", sc.ListByRound)
	return r
}

func TestSubmitEndpoint(t *testing.T) {
	dir := &stubDirectory{responses: []any{
		map[string]any{"addScore": map[string]any{"score": []models.Score{{
			ID:         "0x10",
			TotalScore: 15,
			Team:       &models.Team{ID: "T1", Name: "Alpha"},
		}}}},
	}}
	r := scoreTestRouter(dir, services.PolicyAppend)

	body := `{
		"teamId": "T1",
		"roundId": "R1",
		"judgeId": "J1",
		"scoresByCriteria": [
			{"criterionId": "C1", "score": 8},
			{"criterionId": "C2", "score": 7}
		]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scores", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var rec models.Score
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, 15, rec.TotalScore)
	assert.Equal(t, "T1", rec.Team.ID)
}

func TestSubmitEndpointEmptyCriteria(t *testing.T) {
	dir := &stubDirectory{}
	r := scoreTestRouter(dir, services.PolicyAppend)

	body := `{"teamId": "T1", "roundId": "R1", "judgeId": "J1", "scoresByCriteria": []}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scores", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, dir.calls)
}

func TestSubmitEndpointDuplicateRejected(t *testing.T) {
	dir := &stubDirectory{responses: []any{
		map[string]any{"queryScore": []models.Score{{ID: "0x10"}}},
	}}
	r := scoreTestRouter(dir, services.PolicyReject)

	body := `{"teamId": "T1", "roundId": "R1", "judgeId": "J1", "scoresByCriteria": [{"criterionId": "C1", "score": 5}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/scores", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAmendEndpointNotFound(t *testing.T) {
	dir := &stubDirectory{responses: []any{
		map[string]any{"queryScore": []models.Score{}},
	}}
	r := scoreTestRouter(dir, services.PolicyAppend)

	body := `{"scoresByCriteria": [{"criterionId": "C1", "score": 5}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/scores/0xdead", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListByRoundEndpoint(t *testing.T) {
	dir := &stubDirectory{responses: []any{
		map[string]any{"queryScore": []models.Score{{ID: "0x10", TotalScore: 7}}},
	}}
	r := scoreTestRouter(dir, services.PolicyAppend)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/scores/round/R1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var recs []models.Score
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, 7, recs[0].TotalScore)
}
