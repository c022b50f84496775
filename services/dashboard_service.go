package services

import (
	"context"

	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	teamRepo   repositories.TeamRepository
	memberRepo repositories.MemberRepository
	eventRepo  repositories.EventRepository
	resultRepo repositories.ResultRepository
}

func NewDashboardService(
	teamRepo repositories.TeamRepository,
	memberRepo repositories.MemberRepository,
	eventRepo repositories.EventRepository,
	resultRepo repositories.ResultRepository,
) DashboardService {
	return &dashboardService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		eventRepo:  eventRepo,
		resultRepo: resultRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TeamsTotal, err = s.teamRepo.Count(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.MembersTotal, err = s.memberRepo.Count(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.EventsTotal, err = s.eventRepo.Count(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ResultsTotal, err = s.resultRepo.Count(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
