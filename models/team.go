package models

type Team struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	College      string   `json:"college,omitempty"`
	ContactName  string   `json:"contactName,omitempty"`
	ContactEmail string   `json:"contactEmail,omitempty"`
	ContactPhone string   `json:"contactPhone,omitempty"`
	Members      []string `json:"members,omitempty"`
}
