// file: services/registration_service_test.go
package services

import (
	"testing"

	"hatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHackathon(teams ...models.Team) *models.Hackathon {
	return &models.Hackathon{
		HackCode:      "HACK-00000001",
		Admins:        []string{"admin@example.com"},
		Registrations: teams,
	}
}

func teamOf(teamID, leaderEmail string, memberEmails ...string) models.Team {
	leader := models.Member{Email: leaderEmail, Name: "Leader"}
	members := make([]models.Member, 0, len(memberEmails))
	for _, e := range memberEmails {
		members = append(members, models.Member{Email: e})
	}
	return models.Team{
		TeamID:      teamID,
		TeamName:    "team-" + teamID,
		TeamLeader:  &leader,
		TeamMembers: members,
	}
}

func TestRemoveMemberPromotesFirstRemaining(t *testing.T) {
	h := testHackathon(teamOf("t1", "l@x.com", "a@x.com", "b@x.com"))

	deleted, err := RemoveMember(h, "t1", "l@x.com")
	require.NoError(t, err)
	assert.False(t, deleted)

	team := h.FindTeam("t1")
	require.NotNil(t, team)
	require.NotNil(t, team.TeamLeader)
	assert.Equal(t, "a@x.com", team.TeamLeader.Email)
	require.Len(t, team.TeamMembers, 1)
	assert.Equal(t, "b@x.com", team.TeamMembers[0].Email)
}

func TestRemoveMemberRepeatedLeaderDeparturesDeleteTeam(t *testing.T) {
	h := testHackathon(teamOf("t1", "l@x.com", "a@x.com", "b@x.com"))

	for _, email := range []string{"l@x.com", "a@x.com"} {
		deleted, err := RemoveMember(h, "t1", email)
		require.NoError(t, err)
		assert.False(t, deleted)
	}

	// Last remaining member is the (promoted) leader; their departure
	// removes the team from registrations entirely.
	deleted, err := RemoveMember(h, "t1", "b@x.com")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Nil(t, h.FindTeam("t1"))
	assert.Empty(t, h.Registrations)
}

func TestRemoveMemberRegularMember(t *testing.T) {
	h := testHackathon(teamOf("t1", "l@x.com", "a@x.com", "b@x.com"))

	deleted, err := RemoveMember(h, "t1", "B@X.com") // case-insensitive match
	require.NoError(t, err)
	assert.False(t, deleted)

	team := h.FindTeam("t1")
	assert.Equal(t, "l@x.com", team.TeamLeader.Email)
	require.Len(t, team.TeamMembers, 1)
	assert.Equal(t, "a@x.com", team.TeamMembers[0].Email)
}

func TestRemoveMemberUnknownTeam(t *testing.T) {
	h := testHackathon()
	_, err := RemoveMember(h, "nope", "l@x.com")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestValidateFinalMembers(t *testing.T) {
	leader := models.Member{Email: "l@x.com"}
	other := models.Member{Email: "a@x.com"}

	assert.NoError(t, ValidateFinalMembers([]models.Member{leader, other}, "l@x.com"))
	assert.ErrorIs(t, ValidateFinalMembers(nil, "l@x.com"), ErrInvalidTeamMembers)
	assert.ErrorIs(t, ValidateFinalMembers([]models.Member{other}, "l@x.com"), ErrInvalidTeamMembers)
}

func TestBuildTeamLeaderIsFirstMember(t *testing.T) {
	final := []models.Member{{Email: "l@x.com"}, {Email: "a@x.com"}, {Email: "b@x.com"}}
	team := BuildTeam("tid", "rockets", final, map[string]interface{}{"paid": true})

	assert.Equal(t, "tid", team.TeamID)
	assert.Equal(t, "rockets", team.TeamName)
	require.NotNil(t, team.TeamLeader)
	assert.Equal(t, "l@x.com", team.TeamLeader.Email)
	require.Len(t, team.TeamMembers, 2)
	assert.Equal(t, "a@x.com", team.TeamMembers[0].Email)
}

func TestProfileHoldsAtMostOneEntryPerHackathon(t *testing.T) {
	p := models.Profile{
		Email: "u@x.com",
		HackathonsRegistered: []models.RegistrationRef{
			{HackCode: "HACK-AAAAAAAA", TeamID: "t1"},
			{HackCode: "HACK-BBBBBBBB", TeamID: "t2"},
		},
	}

	// Duplicate registration is detected by the existing entry; the
	// register flow turns this into a 409 for the leader and a silent
	// skip for other members.
	ref := p.RegistrationFor("HACK-AAAAAAAA")
	require.NotNil(t, ref)
	assert.Equal(t, "t1", ref.TeamID)
	assert.Nil(t, p.RegistrationFor("HACK-CCCCCCCC"))
}
