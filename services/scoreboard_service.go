package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
)

// ScoreboardService derives the ranked projection of all teams. It never
// mutates team state.
type ScoreboardService interface {
	Build(ctx context.Context) ([]models.ScoreboardEntry, error)
}

type scoreboardService struct {
	teamRepo repositories.TeamRepository
}

func NewScoreboardService(teamRepo repositories.TeamRepository) ScoreboardService {
	return &scoreboardService{teamRepo: teamRepo}
}

func (s *scoreboardService) Build(ctx context.Context) ([]models.ScoreboardEntry, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams for scoreboard: %w", err)
	}

	entries := make([]models.ScoreboardEntry, 0, len(teams))
	for _, team := range teams {
		entries = append(entries, models.ScoreboardEntry{
			ID:          team.ID,
			Name:        team.Name,
			Color:       team.Color,
			TotalPoints: team.TotalPoints,
		})
	}

	// Ties are broken by ascending team id so the ordering is stable and
	// reproducible for identical input state.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}
