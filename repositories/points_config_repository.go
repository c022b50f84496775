package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/onamfest/scorekeeper/models"
)

var ErrPointsConfigNotFound = errors.New("points config not found")

type PointsConfigRepository interface {
	Get(ctx context.Context) (*models.PointsConfig, error)
	// Upsert replaces the single configuration row, creating it if absent.
	Upsert(ctx context.Context, config models.PointsConfig) error
}

type postgresPointsConfigRepository struct {
	db *sql.DB
}

func NewPostgresPointsConfigRepository(db *sql.DB) PointsConfigRepository {
	return &postgresPointsConfigRepository{db: db}
}

func (r *postgresPointsConfigRepository) Get(ctx context.Context) (*models.PointsConfig, error) {
	query := `SELECT winner_points, runner_up_points FROM points_config WHERE singleton`

	var config models.PointsConfig
	err := r.db.QueryRowContext(ctx, query).Scan(&config.WinnerPoints, &config.RunnerUpPoints)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPointsConfigNotFound
		}
		return nil, fmt.Errorf("failed to get points config: %w", err)
	}
	return &config, nil
}

func (r *postgresPointsConfigRepository) Upsert(ctx context.Context, config models.PointsConfig) error {
	query := `
		INSERT INTO points_config (singleton, winner_points, runner_up_points)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton)
		DO UPDATE SET winner_points = EXCLUDED.winner_points, runner_up_points = EXCLUDED.runner_up_points`

	if _, err := r.db.ExecContext(ctx, query, config.WinnerPoints, config.RunnerUpPoints); err != nil {
		return fmt.Errorf("failed to upsert points config: %w", err)
	}
	return nil
}
