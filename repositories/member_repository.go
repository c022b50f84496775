package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/onamfest/scorekeeper/models"
)

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrMemberTeamInvalid = errors.New("member references an unknown team")
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	List(ctx context.Context) ([]models.Member, error)
	ListByTeamID(ctx context.Context, teamID string) ([]models.Member, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type postgresMemberRepository struct {
	db *sql.DB
}

func NewPostgresMemberRepository(db *sql.DB) MemberRepository {
	return &postgresMemberRepository{db: db}
}

func (r *postgresMemberRepository) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (id, name, category, team_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		member.ID,
		member.Name,
		member.Category,
		member.TeamID,
	).Scan(&member.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrMemberTeamInvalid
		}
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

func (r *postgresMemberRepository) List(ctx context.Context) ([]models.Member, error) {
	query := `
		SELECT id, name, category, team_id, created_at
		FROM members
		ORDER BY created_at ASC`

	return r.queryMembers(ctx, query)
}

func (r *postgresMemberRepository) ListByTeamID(ctx context.Context, teamID string) ([]models.Member, error) {
	query := `
		SELECT id, name, category, team_id, created_at
		FROM members
		WHERE team_id = $1
		ORDER BY created_at ASC`

	return r.queryMembers(ctx, query, teamID)
}

func (r *postgresMemberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return checkAffectedRows(result, ErrMemberNotFound)
}

func (r *postgresMemberRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}
	return count, nil
}

func (r *postgresMemberRepository) queryMembers(ctx context.Context, query string, args ...interface{}) ([]models.Member, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var member models.Member
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Category,
			&member.TeamID,
			&member.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, nil
}
