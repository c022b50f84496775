package models

import "time"

// Result is immutable once written. WinnerPoints and RunnerUpPoints are the
// values actually applied at settlement time, not a reference to the current
// points configuration.
type Result struct {
	ID             string    `json:"id" db:"id"`
	EventID        string    `json:"event_id" db:"event_id"`
	WinnerTeamID   string    `json:"winner_team_id" db:"winner_team_id"`
	RunnerUpTeamID *string   `json:"runner_up_team_id,omitempty" db:"runner_up_team_id"`
	WinnerPoints   int       `json:"winner_points" db:"winner_points"`
	RunnerUpPoints int       `json:"runner_up_points" db:"runner_up_points"`
	Remarks        *string   `json:"remarks,omitempty" db:"remarks"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
