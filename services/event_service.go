package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/onamfest/scorekeeper/models"
	"github.com/onamfest/scorekeeper/repositories"
)

type EventService interface {
	Create(ctx context.Context, input EventInput) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	// Update fully replaces the event's mutable fields.
	Update(ctx context.Context, id string, input EventInput) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
}

type eventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(ctx context.Context, input EventInput) (*models.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		EventDate:   input.EventDate,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id string, input EventInput) (*models.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event for update: %w", err)
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.EventDate = input.EventDate

	if err := s.eventRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return existing, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEventNotFound):
			return ErrEventNotFound
		case errors.Is(err, repositories.ErrEventHasResults):
			return ErrEventHasResults
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func validateEventInput(input EventInput) error {
	if input.Name == "" {
		return ErrEventNameRequired
	}
	if input.EventDate.IsZero() {
		return ErrEventDateRequired
	}
	return nil
}
