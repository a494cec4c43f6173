package services

import (
	"context"
	"fmt"
	"log/slog"

	"utsav/errs"
	"utsav/models"
)

// Directory is the graph-query collaborator everything is stored in.
// *dgraph.Client satisfies it.
type Directory interface {
	Run(ctx context.Context, query string, vars map[string]any, out any) error
}

// SubmitPolicy decides what happens when a judge submits a second score
// for the same team and round.
type SubmitPolicy string

const (
	// PolicyAppend stores every submission as a new record.
	PolicyAppend SubmitPolicy = "append"
	// PolicyReject refuses a second submission for the same triple.
	PolicyReject SubmitPolicy = "reject"
	// PolicyOverwrite amends the existing record in place.
	PolicyOverwrite SubmitPolicy = "overwrite"
)

type CriterionScoreInput struct {
	CriterionID string `json:"criterionId" binding:"required"`
	Score       int    `json:"score"`
}

type SubmitInput struct {
	TeamID  string
	RoundID string
	JudgeID string
	Scores  []CriterionScoreInput
}

// ScoreService records judges' scores. Each call is one independent
// read-or-write cycle against the directory; concurrent amendments of the
// same record are last-writer-wins.
type ScoreService struct {
	dir    Directory
	policy SubmitPolicy
}

func NewScoreService(dir Directory, policy SubmitPolicy) *ScoreService {
	return &ScoreService{dir: dir, policy: policy}
}

const scoreSelection = `
      id
      total_score
      team { id name members }
      judge { id name }
      round { id name }
      scoresByCriteria { id score criterion { id name } }`

const addScoreMutation = `
    mutation AddScore($input: [AddScoreInput!]!) {
      addScore(input: $input) {
        score {` + scoreSelection + `
        }
      }
    }`

const updateScoreMutation = `
    mutation UpdateScore($input: UpdateScoreInput!) {
      updateScore(input: $input) {
        score {` + scoreSelection + `
        }
      }
    }`

const scoreCriteriaQuery = `
    query GetScoreCriteria($id: ID!) {
      queryScore(filter: { id: { eq: $id } }) {
        id
        scoresByCriteria { id }
      }
    }`

const scoreForJudgeQuery = `
    query GetScoreForJudge($teamId: ID!, $roundId: ID!, $judgeId: ID!) {
      queryScore(filter: {
        team: { id: { eq: $teamId } },
        round: { id: { eq: $roundId } },
        judge: { id: { eq: $judgeId } }
      }) {
        id
      }
    }`

const scoresByRoundQuery = `
    query GetScores($roundId: ID!) {
      queryScore(filter: { round: { id: { eq: $roundId } } }) {` + scoreSelection + `
      }
    }`

// Submit records one judge's complete scoring of one team for one round.
// The persisted total is the integer sum of the submitted entries; an
// entry whose score was absent from the request decodes to 0 and sums
// as 0. Criterion ids are linked as given, the directory rejects
// dangling references.
func (s *ScoreService) Submit(ctx context.Context, in SubmitInput) (*models.Score, error) {
	if in.TeamID == "" || in.RoundID == "" || in.JudgeID == "" {
		return nil, errs.Validationf("teamId, roundId and judgeId are required")
	}
	if len(in.Scores) == 0 {
		return nil, errs.Validationf("criteria scores are required")
	}

	if s.policy != PolicyAppend {
		existingID, err := s.findExisting(ctx, in.TeamID, in.RoundID, in.JudgeID)
		if err != nil {
			return nil, err
		}
		if existingID != "" {
			if s.policy == PolicyReject {
				return nil, errs.Conflictf("judge %s already scored team %s in round %s", in.JudgeID, in.TeamID, in.RoundID)
			}
			return s.Amend(ctx, existingID, in.Scores)
		}
	}

	criteria := make([]map[string]any, 0, len(in.Scores))
	for _, cs := range in.Scores {
		criteria = append(criteria, map[string]any{
			"score":     cs.Score,
			"criterion": map[string]any{"id": cs.CriterionID},
		})
	}

	vars := map[string]any{
		"input": []map[string]any{{
			"team":             map[string]any{"id": in.TeamID},
			"judge":            map[string]any{"id": in.JudgeID},
			"round":            map[string]any{"id": in.RoundID},
			"total_score":      totalOf(in.Scores),
			"scoresByCriteria": criteria,
		}},
	}

	var out struct {
		AddScore struct {
			Score []models.Score `json:"score"`
		} `json:"addScore"`
	}
	if err := s.dir.Run(ctx, addScoreMutation, vars, &out); err != nil {
		return nil, err
	}
	if len(out.AddScore.Score) == 0 {
		return nil, fmt.Errorf("add score: empty mutation result")
	}

	rec := out.AddScore.Score[0]
	slog.Info("score recorded", "score_id", rec.ID, "team_id", in.TeamID, "round_id", in.RoundID, "judge_id", in.JudgeID, "total", rec.TotalScore)
	return &rec, nil
}

// Amend replaces the record's full criterion score set and recomputes the
// total. Partial amendment is not supported; callers resend the complete
// list.
func (s *ScoreService) Amend(ctx context.Context, scoreID string, scores []CriterionScoreInput) (*models.Score, error) {
	if len(scores) == 0 {
		return nil, errs.Validationf("criteria scores are required")
	}

	var existing struct {
		QueryScore []models.Score `json:"queryScore"`
	}
	if err := s.dir.Run(ctx, scoreCriteriaQuery, map[string]any{"id": scoreID}, &existing); err != nil {
		return nil, err
	}
	if len(existing.QueryScore) == 0 {
		return nil, errs.NotFound("score", scoreID)
	}

	criteria := make([]map[string]any, 0, len(scores))
	for _, cs := range scores {
		criteria = append(criteria, map[string]any{
			"score":     cs.Score,
			"criterion": map[string]any{"id": cs.CriterionID},
		})
	}

	input := map[string]any{
		"filter": map[string]any{"id": map[string]any{"eq": scoreID}},
		"set": map[string]any{
			"total_score":      totalOf(scores),
			"scoresByCriteria": criteria,
		},
	}
	// Unlink the old criterion scores so the new set fully replaces them.
	if old := existing.QueryScore[0].ScoresByCriteria; len(old) > 0 {
		removals := make([]map[string]any, 0, len(old))
		for _, cs := range old {
			removals = append(removals, map[string]any{"id": cs.ID})
		}
		input["remove"] = map[string]any{"scoresByCriteria": removals}
	}

	var out struct {
		UpdateScore struct {
			Score []models.Score `json:"score"`
		} `json:"updateScore"`
	}
	if err := s.dir.Run(ctx, updateScoreMutation, map[string]any{"input": input}, &out); err != nil {
		return nil, err
	}
	if len(out.UpdateScore.Score) == 0 {
		return nil, errs.NotFound("score", scoreID)
	}

	rec := out.UpdateScore.Score[0]
	slog.Info("score amended", "score_id", rec.ID, "total", rec.TotalScore)
	return &rec, nil
}

// ListByRound returns every score record linked to one round.
func (s *ScoreService) ListByRound(ctx context.Context, roundID string) ([]models.Score, error) {
	var out struct {
		QueryScore []models.Score `json:"queryScore"`
	}
	if err := s.dir.Run(ctx, scoresByRoundQuery, map[string]any{"roundId": roundID}, &out); err != nil {
		return nil, err
	}
	return out.QueryScore, nil
}

func (s *ScoreService) findExisting(ctx context.Context, teamID, roundID, judgeID string) (string, error) {
	var out struct {
		QueryScore []models.Score `json:"queryScore"`
	}
	vars := map[string]any{"teamId": teamID, "roundId": roundID, "judgeId": judgeID}
	if err := s.dir.Run(ctx, scoreForJudgeQuery, vars, &out); err != nil {
		return "", err
	}
	if len(out.QueryScore) == 0 {
		return "", nil
	}
	return out.QueryScore[0].ID, nil
}

func totalOf(scores []CriterionScoreInput) int {
	total := 0
	for _, cs := range scores {
		total += cs.Score
	}
	return total
}
