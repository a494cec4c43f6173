package models

// Role mirrors the Dgraph Role enum.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleJudge Role = "Judge"
	RoleUser  Role = "User"
)

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Role          Role   `json:"role,omitempty"`
	// HashedPassword is only ever selected by the login query and is
	// never written to a response body.
	HashedPassword string `json:"hashedPassword,omitempty"`
}
