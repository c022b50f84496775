package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
)

// PointsConfigService holds the default point awards applied when a
// settlement does not specify explicit values.
type PointsConfigService interface {
	Get(ctx context.Context) (models.PointsConfig, error)
	Set(ctx context.Context, config models.PointsConfig) (models.PointsConfig, error)
}

type pointsConfigService struct {
	configRepo repositories.PointsConfigRepository
}

func NewPointsConfigService(configRepo repositories.PointsConfigRepository) PointsConfigService {
	return &pointsConfigService{configRepo: configRepo}
}

func (s *pointsConfigService) Get(ctx context.Context) (models.PointsConfig, error) {
	config, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrPointsConfigNotFound) {
			return models.DefaultPointsConfig(), nil
		}
		return models.PointsConfig{}, fmt.Errorf("failed to load points config: %w", err)
	}
	return *config, nil
}

func (s *pointsConfigService) Set(ctx context.Context, config models.PointsConfig) (models.PointsConfig, error) {
	if config.WinnerPoints < 0 || config.RunnerUpPoints < 0 {
		return models.PointsConfig{}, ErrPointsNegative
	}
	if err := s.configRepo.Upsert(ctx, config); err != nil {
		return models.PointsConfig{}, fmt.Errorf("failed to store points config: %w", err)
	}
	return config, nil
}
