package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
)

// BootstrapInput carries the startup defaults. The admin credentials come
// from configuration so test runs and real deployments can differ.
type BootstrapInput struct {
	AdminUsername string
	AdminPassword string
}

var defaultTeams = []models.Team{
	{Name: "Team Maveli", Color: "#FF6B35"},
	{Name: "Team Vamanan", Color: "#4ECDC4"},
}

// Bootstrap seeds the initial data on first startup: the default admin
// identity, the two festival teams, and the default points configuration.
// It is idempotent; an already-seeded database is left untouched.
func Bootstrap(
	ctx context.Context,
	logger *slog.Logger,
	authService AuthService,
	teamRepo repositories.TeamRepository,
	configRepo repositories.PointsConfigRepository,
	input BootstrapInput,
) error {
	created, err := authService.EnsureDefaultAdmin(ctx, input.AdminUsername, input.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to ensure default admin: %w", err)
	}
	if created {
		logger.Info("default admin provisioned", slog.String("username", input.AdminUsername))
	}

	teamCount, err := teamRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count teams: %w", err)
	}
	if teamCount == 0 {
		for _, seed := range defaultTeams {
			team := seed
			team.ID = uuid.NewString()
			if err := teamRepo.Create(ctx, &team); err != nil {
				return fmt.Errorf("failed to seed team %q: %w", team.Name, err)
			}
		}
		logger.Info("default teams provisioned", slog.Int("count", len(defaultTeams)))
	}

	if _, err := configRepo.Get(ctx); err != nil {
		if !errors.Is(err, repositories.ErrPointsConfigNotFound) {
			return fmt.Errorf("failed to check points config: %w", err)
		}
		if err := configRepo.Upsert(ctx, models.DefaultPointsConfig()); err != nil {
			return fmt.Errorf("failed to seed points config: %w", err)
		}
		logger.Info("default points config provisioned",
			slog.Int("winner_points", models.DefaultWinnerPoints),
			slog.Int("runner_up_points", models.DefaultRunnerUpPoints),
		)
	}

	return nil
}
