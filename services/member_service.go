package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
)

type MemberService interface {
	Create(ctx context.Context, input CreateMemberInput) (*models.Member, error)
	List(ctx context.Context) ([]models.Member, error)
	ListByTeamID(ctx context.Context, teamID string) ([]models.Member, error)
	Delete(ctx context.Context, id string) error
}

type CreateMemberInput struct {
	Name     string                `json:"name"`
	Category models.MemberCategory `json:"category"`
	TeamID   string                `json:"team_id"`
}

type memberService struct {
	memberRepo repositories.MemberRepository
	teamRepo   repositories.TeamRepository
}

func NewMemberService(memberRepo repositories.MemberRepository, teamRepo repositories.TeamRepository) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
	}
}

func (s *memberService) Create(ctx context.Context, input CreateMemberInput) (*models.Member, error) {
	if input.Name == "" {
		return nil, ErrMemberNameRequired
	}
	if !input.Category.Valid() {
		return nil, ErrMemberInvalidCategory
	}

	// Reject unknown team references before any write.
	if _, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to check member team: %w", err)
	}

	member := &models.Member{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Category: input.Category,
		TeamID:   input.TeamID,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrMemberTeamInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

func (s *memberService) List(ctx context.Context) ([]models.Member, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *memberService) ListByTeamID(ctx context.Context, teamID string) ([]models.Member, error) {
	members, err := s.memberRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members by team: %w", err)
	}
	return members, nil
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}
