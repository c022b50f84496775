package models

import "time"

type MemberCategory string

const (
	CategoryAdult MemberCategory = "Adult"
	CategoryKid   MemberCategory = "Kid"
)

func (c MemberCategory) Valid() bool {
	return c == CategoryAdult || c == CategoryKid
}

type Member struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Category  MemberCategory `json:"category" db:"category"`
	TeamID    string         `json:"team_id" db:"team_id"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
