package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBootstrap(t *testing.T, store *fakeStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := NewAuthService(store.adminRepo())
	err := Bootstrap(context.Background(), logger, auth, store.teamRepo(), store.pointsConfigRepo(), BootstrapInput{
		AdminUsername: "admin",
		AdminPassword: "sekret",
	})
	require.NoError(t, err)
}

func TestBootstrapSeedsDefaults(t *testing.T) {
	store := newFakeStore()
	runBootstrap(t, store)

	adminCount, err := store.adminRepo().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, adminCount)

	teams, err := store.teamRepo().List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	for _, team := range teams {
		assert.Zero(t, team.TotalPoints)
		assert.NotEmpty(t, team.ID)
	}

	config, err := store.pointsConfigRepo().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, config.WinnerPoints)
	assert.Equal(t, 5, config.RunnerUpPoints)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	store := newFakeStore()
	runBootstrap(t, store)

	teams, err := store.teamRepo().List(context.Background())
	require.NoError(t, err)
	firstIDs := []string{teams[0].ID, teams[1].ID}

	runBootstrap(t, store)

	teams, err = store.teamRepo().List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, firstIDs, []string{teams[0].ID, teams[1].ID})
}

func TestBootstrapSkipsSeedTeamsWhenTeamsExist(t *testing.T) {
	store := newFakeStore()
	store.addTeam("custom", "Custom", 42)

	runBootstrap(t, store)

	teams, err := store.teamRepo().List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "custom", teams[0].ID)
}
