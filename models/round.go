package models

// Criterion is one scored dimension of a round. MaxScore is fixed at
// round setup; criteria are only added or removed through round updates.
type Criterion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MaxScore int    `json:"maxScore,omitempty"`
}

type Round struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Date        string      `json:"date,omitempty"`
	Time        string      `json:"time,omitempty"`
	Status      string      `json:"status,omitempty"`
	Criteria    []Criterion `json:"criteria,omitempty"`
}
