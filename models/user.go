package models

import "time"

type UserRole string

const (
	RolePlayer UserRole = "player"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	// Champion pick and predicted combined final score of the championship
	// game. Both stay nil until the user submits them.
	WinnerID   *int `json:"winner_id,omitempty"`
	FinalScore *int `json:"final_score,omitempty"`
}

type Credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
