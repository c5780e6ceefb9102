// file: services/submission_service_test.go
package services

import (
	"testing"

	"hatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(phaseID int, score float64) models.Submission {
	return models.Submission{PhaseID: phaseID, Content: "content", Score: &score}
}

func TestUpsertSubmissionReplacesContentInPlace(t *testing.T) {
	h := testHackathon(teamOf("t1", "l@x.com"))

	require.NoError(t, UpsertSubmission(h, "t1", 1, "X"))
	require.NoError(t, UpsertSubmission(h, "t1", 1, "Y"))

	team := h.FindTeam("t1")
	require.Len(t, team.Submissions, 1)
	assert.Equal(t, 1, team.Submissions[0].PhaseID)
	assert.Equal(t, "Y", team.Submissions[0].Content)
}

func TestUpsertSubmissionAppendsNewPhase(t *testing.T) {
	h := testHackathon(teamOf("t1", "l@x.com"))

	require.NoError(t, UpsertSubmission(h, "t1", 1, "X"))
	require.NoError(t, UpsertSubmission(h, "t1", 2, "Z"))

	team := h.FindTeam("t1")
	require.Len(t, team.Submissions, 2)
}

func TestUpsertSubmissionUnknownTeam(t *testing.T) {
	h := testHackathon()
	assert.ErrorIs(t, UpsertSubmission(h, "nope", 1, "X"), ErrTeamNotFound)
}

func TestApplyScoreRequiresPriorSubmission(t *testing.T) {
	h := testHackathon(teamOf("t1", "l@x.com"))
	assert.ErrorIs(t, ApplyScore(h, "t1", 1, 10), ErrSubmissionNotFound)

	require.NoError(t, UpsertSubmission(h, "t1", 1, "X"))
	assert.ErrorIs(t, ApplyScore(h, "t1", 2, 10), ErrSubmissionNotFound)
}

func TestApplyScoreLaterGradesWin(t *testing.T) {
	h := testHackathon(teamOf("t1", "l@x.com"))
	require.NoError(t, UpsertSubmission(h, "t1", 1, "X"))

	require.NoError(t, ApplyScore(h, "t1", 1, 5))
	require.NoError(t, ApplyScore(h, "t1", 1, 9))

	team := h.FindTeam("t1")
	require.NotNil(t, team.Submissions[0].Score)
	assert.Equal(t, 9.0, *team.Submissions[0].Score)
}

func TestEliminateTotalReEvaluation(t *testing.T) {
	t1 := teamOf("t1", "a@x.com")
	t1.Submissions = []models.Submission{scored(1, 10)}
	t2 := teamOf("t2", "b@x.com")
	t2.Submissions = []models.Submission{scored(1, 5)}
	t2.Status = models.TeamStatusActive // prior status must be overwritten
	t3 := teamOf("t3", "c@x.com")       // no submission for phase 1

	h := testHackathon(t1, t2, t3)

	result := Eliminate(h, 1, 7)

	assert.Equal(t, []string{"t1"}, result.Active)
	assert.Equal(t, []string{"t2", "t3"}, result.Inactive)
	assert.Equal(t, models.TeamStatusActive, h.FindTeam("t1").Status)
	assert.Equal(t, models.TeamStatusInactive, h.FindTeam("t2").Status)
	assert.Equal(t, models.TeamStatusInactive, h.FindTeam("t3").Status)
}

func TestEliminateUngradedSubmissionIsInactive(t *testing.T) {
	t1 := teamOf("t1", "a@x.com")
	t1.Submissions = []models.Submission{{PhaseID: 1, Content: "X"}}
	h := testHackathon(t1)

	result := Eliminate(h, 1, 0)
	assert.Empty(t, result.Active)
	assert.Equal(t, []string{"t1"}, result.Inactive)
}

// Both writers persist under the optimistic-concurrency store: a writer
// that raced loses the version check and reapplies its mutation to the
// reloaded document. This simulates the reload-and-reapply cycle of
// database.MutateHackathon and asserts the chosen (fixed) behavior —
// no lost update.
func TestConcurrentSubmitsBothPersistAfterReapply(t *testing.T) {
	h := testHackathon(teamOf("t1", "a@x.com"), teamOf("t2", "b@x.com"))

	stale := *h
	stale.Registrations = append([]models.Team(nil), h.Registrations...)

	// Writer 1 wins the version check.
	require.NoError(t, UpsertSubmission(h, "t1", 1, "first"))

	// Writer 2 had mutated the stale snapshot; its replace fails the
	// version filter, so the mutation is reapplied to the current doc.
	require.NoError(t, UpsertSubmission(&stale, "t2", 1, "second"))
	require.NoError(t, UpsertSubmission(h, "t2", 1, "second"))

	require.Len(t, h.FindTeam("t1").Submissions, 1)
	require.Len(t, h.FindTeam("t2").Submissions, 1)
	assert.Equal(t, "first", h.FindTeam("t1").Submissions[0].Content)
	assert.Equal(t, "second", h.FindTeam("t2").Submissions[0].Content)
}
