package models

// LeaderboardEntry is derived, never persisted. It is recomputed from the
// full score record set on every leaderboard request.
type LeaderboardEntry struct {
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	MemberCount int    `json:"memberCount"`
	TotalScore  int    `json:"totalScore"`
}
