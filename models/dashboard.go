package models

type DashboardStats struct {
	TeamsTotal   int `json:"teams_total"`
	MembersTotal int `json:"members_total"`
	EventsTotal  int `json:"events_total"`
	ResultsTotal int `json:"results_total"`
}
