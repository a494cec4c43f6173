package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utsav/errs"
	"utsav/models"
)

func scoreFor(teamID, teamName string, total int, members ...string) models.Score {
	return models.Score{
		TotalScore: total,
		Team:       &models.Team{ID: teamID, Name: teamName, Members: members},
	}
}

func TestComputeLeaderboardEmpty(t *testing.T) {
	dir := &fakeDirectory{responses: []any{queryScoreResponse()}}
	svc := NewLeaderboardService(dir)

	board, err := svc.ComputeLeaderboard(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, board)
	assert.Empty(t, board)
}

func TestComputeLeaderboardGroupsAndSorts(t *testing.T) {
	dir := &fakeDirectory{responses: []any{queryScoreResponse(
		scoreFor("T1", "Alpha", 40, "a", "b"),
		scoreFor("T2", "Beta", 90, "c"),
		scoreFor("T1", "Alpha", 55, "a", "b"),
	)}}
	svc := NewLeaderboardService(dir)

	board, err := svc.ComputeLeaderboard(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, board, 2)

	// T1's 40+55 beats T2's 90.
	assert.Equal(t, "T1", board[0].TeamID)
	assert.Equal(t, 95, board[0].TotalScore)
	assert.Equal(t, "Alpha", board[0].TeamName)
	assert.Equal(t, 2, board[0].MemberCount)

	assert.Equal(t, "T2", board[1].TeamID)
	assert.Equal(t, 90, board[1].TotalScore)
}

func TestComputeLeaderboardTieBreaksByTeamID(t *testing.T) {
	dir := &fakeDirectory{responses: []any{queryScoreResponse(
		scoreFor("T9", "Niner", 50),
		scoreFor("T2", "Beta", 50),
		scoreFor("T5", "Five", 50),
	)}}
	svc := NewLeaderboardService(dir)

	board, err := svc.ComputeLeaderboard(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "T2", board[0].TeamID)
	assert.Equal(t, "T5", board[1].TeamID)
	assert.Equal(t, "T9", board[2].TeamID)
}

func TestComputeLeaderboardConservesTotals(t *testing.T) {
	records := []models.Score{
		scoreFor("T1", "Alpha", 10),
		scoreFor("T2", "Beta", 20),
		scoreFor("T1", "Alpha", 30),
		scoreFor("T3", "Gamma", 0),
		scoreFor("T2", "Beta", 5),
	}
	dir := &fakeDirectory{responses: []any{queryScoreResponse(records...)}}
	svc := NewLeaderboardService(dir)

	board, err := svc.ComputeLeaderboard(context.Background(), "")
	require.NoError(t, err)

	want := 0
	for _, rec := range records {
		want += rec.TotalScore
	}
	got := 0
	for _, entry := range board {
		got += entry.TotalScore
	}
	assert.Equal(t, want, got)
}

func TestComputeLeaderboardIdempotent(t *testing.T) {
	records := queryScoreResponse(
		scoreFor("T1", "Alpha", 40),
		scoreFor("T2", "Beta", 40),
		scoreFor("T3", "Gamma", 70),
	)
	dir := &fakeDirectory{responses: []any{records, records}}
	svc := NewLeaderboardService(dir)

	first, err := svc.ComputeLeaderboard(context.Background(), "")
	require.NoError(t, err)
	second, err := svc.ComputeLeaderboard(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeLeaderboardFirstSeenTeamSnapshot(t *testing.T) {
	dir := &fakeDirectory{responses: []any{queryScoreResponse(
		scoreFor("T1", "Alpha", 10, "a", "b", "c"),
		scoreFor("T1", "Alpha Renamed", 20, "a"),
	)}}
	svc := NewLeaderboardService(dir)

	board, err := svc.ComputeLeaderboard(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "Alpha", board[0].TeamName)
	assert.Equal(t, 3, board[0].MemberCount)
	assert.Equal(t, 30, board[0].TotalScore)
}

func TestComputeLeaderboardSkipsRecordsWithoutTeam(t *testing.T) {
	dir := &fakeDirectory{responses: []any{queryScoreResponse(
		models.Score{TotalScore: 99},
		scoreFor("T1", "Alpha", 10),
	)}}
	svc := NewLeaderboardService(dir)

	board, err := svc.ComputeLeaderboard(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "T1", board[0].TeamID)
}

func TestComputeLeaderboardRoundScoped(t *testing.T) {
	dir := &fakeDirectory{responses: []any{
		map[string]any{"getRound": models.Round{ID: "R1"}},
		queryScoreResponse(scoreFor("T1", "Alpha", 10)),
	}}
	svc := NewLeaderboardService(dir)

	board, err := svc.ComputeLeaderboard(context.Background(), "R1")
	require.NoError(t, err)
	require.Len(t, board, 1)

	require.Len(t, dir.calls, 2)
	assert.Equal(t, "R1", dir.calls[0].vars["id"])
	assert.Equal(t, "R1", dir.calls[1].vars["roundId"])
}

func TestComputeLeaderboardUnknownRound(t *testing.T) {
	dir := &fakeDirectory{responses: []any{
		map[string]any{"getRound": nil},
	}}
	svc := NewLeaderboardService(dir)

	_, err := svc.ComputeLeaderboard(context.Background(), "R404")

	var nf *errs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "round", nf.Resource)
	assert.Len(t, dir.calls, 1)
}
