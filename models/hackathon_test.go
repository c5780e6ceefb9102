// file: models/hackathon_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAdmin(t *testing.T) {
	h := &Hackathon{Admins: []string{"owner@x.com", "co@x.com"}}

	assert.True(t, h.IsAdmin("owner@x.com"))
	assert.True(t, h.IsAdmin("co@x.com"))
	assert.False(t, h.IsAdmin("OWNER@x.com"))
	assert.False(t, h.IsAdmin("stranger@x.com"))
	assert.False(t, h.IsAdmin(""))
}

func TestFindTeamReturnsLivePointer(t *testing.T) {
	h := &Hackathon{Registrations: []Team{
		{TeamID: "t1", TeamName: "alpha"},
		{TeamID: "t2", TeamName: "beta"},
	}}

	team := h.FindTeam("t2")
	require.NotNil(t, team)
	team.Status = TeamStatusInactive

	assert.Equal(t, TeamStatusInactive, h.Registrations[1].Status)
	assert.Nil(t, h.FindTeam("missing"))
}
