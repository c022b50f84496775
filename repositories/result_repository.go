package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/onamfest/scorekeeper/models"
)

type ResultRepository interface {
	// Create inserts the result record. It accepts an SQLExecutor so the
	// insert can share a transaction with the team point increments.
	Create(ctx context.Context, exec SQLExecutor, result *models.Result) error
	List(ctx context.Context) ([]models.Result, error)
	ListByWinnerTeamID(ctx context.Context, teamID string) ([]models.Result, error)
	Count(ctx context.Context) (int, error)
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

func (r *postgresResultRepository) Create(ctx context.Context, exec SQLExecutor, result *models.Result) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO results (id, event_id, winner_team_id, runner_up_team_id, winner_points, runner_up_points, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := executor.QueryRowContext(ctx, query,
		result.ID,
		result.EventID,
		result.WinnerTeamID,
		result.RunnerUpTeamID,
		result.WinnerPoints,
		result.RunnerUpPoints,
		result.Remarks,
	).Scan(&result.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

func (r *postgresResultRepository) List(ctx context.Context) ([]models.Result, error) {
	query := `
		SELECT id, event_id, winner_team_id, runner_up_team_id, winner_points, runner_up_points, remarks, created_at
		FROM results
		ORDER BY created_at ASC`

	return r.queryResults(ctx, query)
}

func (r *postgresResultRepository) ListByWinnerTeamID(ctx context.Context, teamID string) ([]models.Result, error) {
	query := `
		SELECT id, event_id, winner_team_id, runner_up_team_id, winner_points, runner_up_points, remarks, created_at
		FROM results
		WHERE winner_team_id = $1
		ORDER BY created_at ASC`

	return r.queryResults(ctx, query, teamID)
}

func (r *postgresResultRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return count, nil
}

func (r *postgresResultRepository) queryResults(ctx context.Context, query string, args ...interface{}) ([]models.Result, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var result models.Result
		if err := rows.Scan(
			&result.ID,
			&result.EventID,
			&result.WinnerTeamID,
			&result.RunnerUpTeamID,
			&result.WinnerPoints,
			&result.RunnerUpPoints,
			&result.Remarks,
			&result.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}
	return results, nil
}

func (r *postgresResultRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}
