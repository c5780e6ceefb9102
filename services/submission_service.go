// file: services/submission_service.go
package services

import (
	"errors"

	"hatch/models"
)

var ErrSubmissionNotFound = errors.New("submission for this phase not found")

// UpsertSubmission stores content for (teamID, phaseIndex). A second
// submission for the same phase replaces the content of the existing
// entry instead of appending a new record.
func UpsertSubmission(h *models.Hackathon, teamID string, phaseIndex int, content interface{}) error {
	team := h.FindTeam(teamID)
	if team == nil {
		return ErrTeamNotFound
	}

	for i := range team.Submissions {
		if team.Submissions[i].PhaseID == phaseIndex {
			team.Submissions[i].Content = content
			return nil
		}
	}
	team.Submissions = append(team.Submissions, models.Submission{
		PhaseID: phaseIndex,
		Content: content,
	})
	return nil
}

// ApplyScore sets the score on an existing submission. Grading requires
// a prior submission; later grades always win.
func ApplyScore(h *models.Hackathon, teamID string, phaseID int, score float64) error {
	team := h.FindTeam(teamID)
	if team == nil {
		return ErrTeamNotFound
	}
	if len(team.Submissions) == 0 {
		return ErrSubmissionNotFound
	}
	for i := range team.Submissions {
		if team.Submissions[i].PhaseID == phaseID {
			team.Submissions[i].Score = &score
			return nil
		}
	}
	return ErrSubmissionNotFound
}

type EliminationResult struct {
	Active   []string `json:"active"`
	Inactive []string `json:"inactive"`
}

// Eliminate re-evaluates every registered team against the cutoff for
// one phase. Status is written for every team regardless of its prior
// value; a team without a scored submission for the phase is inactive.
func Eliminate(h *models.Hackathon, phaseID int, cutoffScore float64) EliminationResult {
	result := EliminationResult{Active: []string{}, Inactive: []string{}}
	for i := range h.Registrations {
		team := &h.Registrations[i]
		var score *float64
		for j := range team.Submissions {
			if team.Submissions[j].PhaseID == phaseID {
				score = team.Submissions[j].Score
				break
			}
		}
		if score != nil && *score >= cutoffScore {
			team.Status = models.TeamStatusActive
			result.Active = append(result.Active, team.TeamID)
		} else {
			team.Status = models.TeamStatusInactive
			result.Inactive = append(result.Inactive, team.TeamID)
		}
	}
	return result
}
