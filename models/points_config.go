package models

// Defaults applied when no configuration row has ever been written.
const (
	DefaultWinnerPoints   = 10
	DefaultRunnerUpPoints = 5
)

// PointsConfig is a single-row record: there is exactly zero or one live
// instance per installation, replaced wholesale on update.
type PointsConfig struct {
	WinnerPoints   int `json:"winner_points" db:"winner_points"`
	RunnerUpPoints int `json:"runner_up_points" db:"runner_up_points"`
}

func DefaultPointsConfig() PointsConfig {
	return PointsConfig{
		WinnerPoints:   DefaultWinnerPoints,
		RunnerUpPoints: DefaultRunnerUpPoints,
	}
}
