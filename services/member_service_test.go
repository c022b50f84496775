package services

import (
	"context"
	"testing"

	"github.com/onamfest/scorekeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMember(t *testing.T) {
	store := newFakeStore()
	store.addTeam("alpha", "Alpha", 0)
	members := NewMemberService(store.memberRepo(), store.teamRepo())

	member, err := members.Create(context.Background(), CreateMemberInput{
		Name:     "Anju",
		Category: models.CategoryAdult,
		TeamID:   "alpha",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, member.ID)
	assert.Equal(t, "alpha", member.TeamID)

	listed, err := members.ListByTeamID(context.Background(), "alpha")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, member.ID, listed[0].ID)
}

func TestCreateMemberRejectsUnknownTeam(t *testing.T) {
	store := newFakeStore()
	members := NewMemberService(store.memberRepo(), store.teamRepo())

	_, err := members.Create(context.Background(), CreateMemberInput{
		Name:     "Anju",
		Category: models.CategoryKid,
		TeamID:   "ghost",
	})
	assert.ErrorIs(t, err, ErrTeamNotFound)

	count, err := store.memberRepo().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateMemberValidation(t *testing.T) {
	store := newFakeStore()
	store.addTeam("alpha", "Alpha", 0)
	members := NewMemberService(store.memberRepo(), store.teamRepo())

	_, err := members.Create(context.Background(), CreateMemberInput{
		Category: models.CategoryAdult,
		TeamID:   "alpha",
	})
	assert.ErrorIs(t, err, ErrMemberNameRequired)

	_, err = members.Create(context.Background(), CreateMemberInput{
		Name:     "Anju",
		Category: "Teen",
		TeamID:   "alpha",
	})
	assert.ErrorIs(t, err, ErrMemberInvalidCategory)
}

func TestDeleteMember(t *testing.T) {
	store := newFakeStore()
	store.addTeam("alpha", "Alpha", 0)
	members := NewMemberService(store.memberRepo(), store.teamRepo())

	member, err := members.Create(context.Background(), CreateMemberInput{
		Name:     "Anju",
		Category: models.CategoryAdult,
		TeamID:   "alpha",
	})
	require.NoError(t, err)

	require.NoError(t, members.Delete(context.Background(), member.ID))
	assert.ErrorIs(t, members.Delete(context.Background(), member.ID), ErrMemberNotFound)
}
