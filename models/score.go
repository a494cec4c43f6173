package models

// CriterionScore is one judge's score for one criterion. It is owned by
// its parent Score and is replaced wholesale when the record is amended.
type CriterionScore struct {
	ID        string    `json:"id,omitempty"`
	Score     int       `json:"score"`
	Criterion Criterion `json:"criterion"`
}

// Score is one judge's complete scoring of one team for one round.
// Invariant: TotalScore == sum of ScoresByCriteria[i].Score.
type Score struct {
	ID               string           `json:"id"`
	TotalScore       int              `json:"total_score"`
	Team             *Team            `json:"team,omitempty"`
	Judge            *Judge           `json:"judge,omitempty"`
	Round            *Round           `json:"round,omitempty"`
	ScoresByCriteria []CriterionScore `json:"scoresByCriteria,omitempty"`
}
