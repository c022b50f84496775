package models

type ScoreboardEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	TotalPoints int    `json:"total_points"`
}
