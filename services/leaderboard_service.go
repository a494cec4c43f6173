package services

import (
	"context"
	"log/slog"
	"sort"

	"utsav/errs"
	"utsav/models"
)

// LeaderboardService ranks teams by their accumulated score totals. It is
// read-only and keeps no state between calls; every request folds the
// full record set from scratch.
type LeaderboardService struct {
	dir Directory
}

func NewLeaderboardService(dir Directory) *LeaderboardService {
	return &LeaderboardService{dir: dir}
}

const allScoresQuery = `
    query GetAllScores {
      queryScore {
        id
        total_score
        team { id name members }
      }
    }`

const roundScoresQuery = `
    query GetRoundScores($roundId: ID!) {
      queryScore(filter: { round: { id: { eq: $roundId } } }) {
        id
        total_score
        team { id name members }
      }
    }`

const getRoundQuery = `
    query GetRound($id: ID!) {
      getRound(id: $id) {
        id
      }
    }`

// ComputeLeaderboard returns team standings, highest total first, ties
// broken by ascending team id. roundID scopes the board to one round; an
// empty roundID covers all rounds. Teams with no records in scope are
// absent rather than listed at zero. Team name and member count are taken
// from the first record seen per team, the Team entity is not re-fetched.
func (s *LeaderboardService) ComputeLeaderboard(ctx context.Context, roundID string) ([]models.LeaderboardEntry, error) {
	query := allScoresQuery
	vars := map[string]any{}
	if roundID != "" {
		if err := s.checkRound(ctx, roundID); err != nil {
			return nil, err
		}
		query = roundScoresQuery
		vars["roundId"] = roundID
	}

	var out struct {
		QueryScore []models.Score `json:"queryScore"`
	}
	if err := s.dir.Run(ctx, query, vars, &out); err != nil {
		return nil, err
	}

	totals := make(map[string]*models.LeaderboardEntry)
	for _, rec := range out.QueryScore {
		if rec.Team == nil || rec.Team.ID == "" {
			continue
		}
		entry, ok := totals[rec.Team.ID]
		if !ok {
			entry = &models.LeaderboardEntry{
				TeamID:      rec.Team.ID,
				TeamName:    rec.Team.Name,
				MemberCount: len(rec.Team.Members),
			}
			totals[rec.Team.ID] = entry
		}
		entry.TotalScore += rec.TotalScore
	}

	board := make([]models.LeaderboardEntry, 0, len(totals))
	for _, entry := range totals {
		board = append(board, *entry)
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].TotalScore != board[j].TotalScore {
			return board[i].TotalScore > board[j].TotalScore
		}
		return board[i].TeamID < board[j].TeamID
	})

	slog.Info("leaderboard computed", "records", len(out.QueryScore), "teams", len(board), "round_id", roundID)
	return board, nil
}

func (s *LeaderboardService) checkRound(ctx context.Context, roundID string) error {
	var out struct {
		GetRound *models.Round `json:"getRound"`
	}
	if err := s.dir.Run(ctx, getRoundQuery, map[string]any{"id": roundID}, &out); err != nil {
		return err
	}
	if out.GetRound == nil {
		return errs.NotFound("round", roundID)
	}
	return nil
}
