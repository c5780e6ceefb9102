// file: services/results_service_test.go
package services

import (
	"errors"
	"testing"

	"hatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementForRank(t *testing.T) {
	first, _ := AchievementForRank(1)
	second, _ := AchievementForRank(2)
	third, _ := AchievementForRank(3)
	participant, _ := AchievementForRank(17)

	assert.Equal(t, "First Place Winner", first)
	assert.Equal(t, "Second Place Winner", second)
	assert.Equal(t, "Third Place Winner", third)
	assert.Equal(t, "Certificate of Participation", participant)
}

func TestDistributeCertificatesSummary(t *testing.T) {
	h := testHackathon(
		teamOf("t1", "one@x.com"),
		teamOf("t2", "two@x.com"),
	)
	h.EventName = "Hatch Finals"
	h.Organisers = []models.Organiser{{Name: "Ada"}}

	leaderboard := []models.LeaderboardEntry{
		{TeamID: "t1", TeamName: "team-t1", Rank: 1},
		{TeamID: "t2", TeamName: "team-t2", Rank: 2},
		{TeamID: "ghost", TeamName: "ghost", Rank: 3},
	}

	var sent []string
	sender := func(email, name, eventName, certURL, achievement, prefix, organizer string) error {
		sent = append(sent, email)
		assert.Equal(t, "Hatch Finals", eventName)
		assert.Equal(t, "Ada", organizer)
		return nil
	}

	status := DistributeCertificates(h, leaderboard, "http://localhost:5000", sender)

	assert.Equal(t, 3, status.TotalTeams)
	assert.Equal(t, 2, status.CertificatesSent)
	assert.Equal(t, 1, status.FailedSends)
	assert.Equal(t, []string{"one@x.com", "two@x.com"}, sent)

	require.Len(t, status.Details, 3)
	assert.Equal(t, "sent", status.Details[0].Status)
	assert.Equal(t, "First Place Winner", status.Details[0].Achievement)
	assert.Contains(t, status.Details[0].CertificateURL, "hackCode=HACK-00000001")
	assert.Contains(t, status.Details[0].CertificateURL, "rank=1")
	assert.Equal(t, "failed", status.Details[2].Status)
	assert.Equal(t, "Team details not found", status.Details[2].Reason)
}

// Per-recipient failures are isolated: one broken mailbox never stops
// the rest of the fan-out.
func TestDistributeCertificatesFailureIsolation(t *testing.T) {
	h := testHackathon(
		teamOf("t1", "bad@x.com"),
		teamOf("t2", "good@x.com"),
	)

	leaderboard := []models.LeaderboardEntry{
		{TeamID: "t1", TeamName: "team-t1", Rank: 1},
		{TeamID: "t2", TeamName: "team-t2", Rank: 4},
	}

	sender := func(email, name, eventName, certURL, achievement, prefix, organizer string) error {
		if email == "bad@x.com" {
			return errors.New("mailbox unavailable")
		}
		return nil
	}

	status := DistributeCertificates(h, leaderboard, "http://localhost:5000", sender)

	assert.Equal(t, 1, status.CertificatesSent)
	assert.Equal(t, 1, status.FailedSends)
	assert.Equal(t, "Email sending failed", status.Details[0].Reason)
	assert.Equal(t, "sent", status.Details[1].Status)
	assert.Equal(t, "Certificate of Participation", status.Details[1].Achievement)
}

func TestDistributeCertificatesLeaderWithoutEmail(t *testing.T) {
	team := teamOf("t1", "")
	h := testHackathon(team)

	status := DistributeCertificates(h, []models.LeaderboardEntry{{TeamID: "t1", TeamName: "team-t1", Rank: 1}},
		"http://localhost:5000",
		func(string, string, string, string, string, string, string) error { return nil })

	assert.Equal(t, 0, status.CertificatesSent)
	assert.Equal(t, 1, status.FailedSends)
	assert.Equal(t, "No email address found", status.Details[0].Reason)
}
