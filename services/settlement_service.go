package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
)

// SettlementService records the outcome of one event: it applies the point
// awards to the involved teams and writes the immutable result record, all
// inside a single transaction. A result is never written without its point
// increments, and point increments are never committed without the result.
type SettlementService interface {
	Settle(ctx context.Context, input SettleInput) (*models.Result, error)
}

type SettleInput struct {
	EventID        string  `json:"event_id"`
	WinnerTeamID   string  `json:"winner_team_id"`
	RunnerUpTeamID *string `json:"runner_up_team_id,omitempty"`
	WinnerPoints   *int    `json:"winner_points,omitempty"`
	RunnerUpPoints *int    `json:"runner_up_points,omitempty"`
	Remarks        *string `json:"remarks,omitempty"`
}

type settlementService struct {
	txManager  repositories.TxManager
	teamRepo   repositories.TeamRepository
	eventRepo  repositories.EventRepository
	resultRepo repositories.ResultRepository
	configSvc  PointsConfigService
}

func NewSettlementService(
	txManager repositories.TxManager,
	teamRepo repositories.TeamRepository,
	eventRepo repositories.EventRepository,
	resultRepo repositories.ResultRepository,
	configSvc PointsConfigService,
) SettlementService {
	return &settlementService{
		txManager:  txManager,
		teamRepo:   teamRepo,
		eventRepo:  eventRepo,
		resultRepo: resultRepo,
		configSvc:  configSvc,
	}
}

func (s *settlementService) Settle(ctx context.Context, input SettleInput) (*models.Result, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	// Resolve omitted point values from the current policy at call time.
	// The resolved values are captured on the result record and stay fixed
	// even if the policy changes later.
	winnerPoints, runnerUpPoints, err := s.resolvePoints(ctx, input)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		ID:             uuid.NewString(),
		EventID:        input.EventID,
		WinnerTeamID:   input.WinnerTeamID,
		RunnerUpTeamID: input.RunnerUpTeamID,
		WinnerPoints:   winnerPoints,
		RunnerUpPoints: runnerUpPoints,
		Remarks:        input.Remarks,
	}

	err = s.txManager.WithinTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.teamRepo.IncrementTotalPoints(ctx, exec, input.WinnerTeamID, winnerPoints); err != nil {
			return fmt.Errorf("failed to apply winner points: %w", err)
		}
		if input.RunnerUpTeamID != nil {
			if err := s.teamRepo.IncrementTotalPoints(ctx, exec, *input.RunnerUpTeamID, runnerUpPoints); err != nil {
				return fmt.Errorf("failed to apply runner-up points: %w", err)
			}
		}
		return s.resultRepo.Create(ctx, exec, result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *settlementService) validate(ctx context.Context, input SettleInput) error {
	if input.WinnerTeamID == "" {
		return ErrWinnerRequired
	}
	if input.RunnerUpTeamID != nil && *input.RunnerUpTeamID == input.WinnerTeamID {
		return ErrRunnerUpSameAsWinner
	}
	if (input.WinnerPoints != nil && *input.WinnerPoints < 0) ||
		(input.RunnerUpPoints != nil && *input.RunnerUpPoints < 0) {
		return ErrPointsNegative
	}

	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to check event: %w", err)
	}

	if _, err := s.teamRepo.GetByID(ctx, input.WinnerTeamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to check winner team: %w", err)
	}
	if input.RunnerUpTeamID != nil {
		if _, err := s.teamRepo.GetByID(ctx, *input.RunnerUpTeamID); err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return ErrTeamNotFound
			}
			return fmt.Errorf("failed to check runner-up team: %w", err)
		}
	}
	return nil
}

func (s *settlementService) resolvePoints(ctx context.Context, input SettleInput) (int, int, error) {
	winnerPoints, runnerUpPoints := 0, 0
	needConfig := input.WinnerPoints == nil || input.RunnerUpPoints == nil

	var config models.PointsConfig
	if needConfig {
		var err error
		config, err = s.configSvc.Get(ctx)
		if err != nil {
			return 0, 0, err
		}
	}

	if input.WinnerPoints != nil {
		winnerPoints = *input.WinnerPoints
	} else {
		winnerPoints = config.WinnerPoints
	}
	if input.RunnerUpPoints != nil {
		runnerUpPoints = *input.RunnerUpPoints
	} else {
		runnerUpPoints = config.RunnerUpPoints
	}
	return winnerPoints, runnerUpPoints, nil
}
