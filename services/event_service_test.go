package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	store := newFakeStore()
	events := NewEventService(store.eventRepo())

	event, err := events.Create(context.Background(), EventInput{
		Name:        "Tug of War",
		Description: "Best of three",
		EventDate:   time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)

	_, err = events.Create(context.Background(), EventInput{EventDate: time.Now()})
	assert.ErrorIs(t, err, ErrEventNameRequired)

	_, err = events.Create(context.Background(), EventInput{Name: "Tug of War"})
	assert.ErrorIs(t, err, ErrEventDateRequired)
}

func TestEventsListedByDate(t *testing.T) {
	store := newFakeStore()
	events := NewEventService(store.eventRepo())

	_, err := events.Create(context.Background(), EventInput{
		Name:      "Later",
		EventDate: time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = events.Create(context.Background(), EventInput{
		Name:      "Earlier",
		EventDate: time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	listed, err := events.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Earlier", listed[0].Name)
	assert.Equal(t, "Later", listed[1].Name)
}

func TestUpdateEventReplacesAllFields(t *testing.T) {
	store := newFakeStore()
	events := NewEventService(store.eventRepo())

	event, err := events.Create(context.Background(), EventInput{
		Name:        "Tug of War",
		Description: "Best of three",
		EventDate:   time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	updated, err := events.Update(context.Background(), event.ID, EventInput{
		Name:      "Tug of War Finals",
		EventDate: time.Date(2025, 9, 6, 16, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, event.ID, updated.ID)
	assert.Equal(t, "Tug of War Finals", updated.Name)
	assert.Empty(t, updated.Description)

	_, err = events.Update(context.Background(), "ghost", EventInput{
		Name:      "Nope",
		EventDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteEvent(t *testing.T) {
	store := newFakeStore()
	events := NewEventService(store.eventRepo())

	event, err := events.Create(context.Background(), EventInput{
		Name:      "Tug of War",
		EventDate: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, events.Delete(context.Background(), event.ID))
	assert.ErrorIs(t, events.Delete(context.Background(), event.ID), ErrEventNotFound)
}

func TestDeleteSettledEventReported(t *testing.T) {
	store, settlement := newSettlementFixture()
	store.addTeam("alpha", "Team Maveli", 0)
	store.addEvent("ev1", "Tug of War")
	events := NewEventService(store.eventRepo())

	_, err := settlement.Settle(context.Background(), SettleInput{
		EventID:      "ev1",
		WinnerTeamID: "alpha",
	})
	require.NoError(t, err)

	err = events.Delete(context.Background(), "ev1")
	assert.ErrorIs(t, err, ErrEventHasResults)

	listed, err := events.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "ev1", listed[0].ID)
}
