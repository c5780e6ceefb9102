// file: services/registration_service.go
package services

import (
	"errors"
	"strings"

	"hatch/models"
)

var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrLeaderRequired     = errors.New("team leader email required")
	ErrAlreadyRegistered  = errors.New("already registered in this hackathon")
	ErrInvalidTeamMembers = errors.New("team leader missing or invalid after validation")
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BuildTeam assembles the team object appended to registrations after
// member validation. The first final member is always the leader.
func BuildTeam(teamID, teamName string, finalMembers []models.Member, paymentDetails map[string]interface{}) models.Team {
	leader := finalMembers[0]
	return models.Team{
		TeamID:         teamID,
		TeamName:       teamName,
		TeamLeader:     &leader,
		TeamMembers:    finalMembers[1:],
		PaymentDetails: paymentDetails,
	}
}

// ValidateFinalMembers enforces the post-processing invariant: at least
// one member survived, and the survivor list still starts with the
// leader.
func ValidateFinalMembers(finalMembers []models.Member, leaderEmail string) error {
	if len(finalMembers) == 0 || NormalizeEmail(finalMembers[0].Email) != leaderEmail {
		return ErrInvalidTeamMembers
	}
	return nil
}

func removeTeam(h *models.Hackathon, teamID string) {
	kept := h.Registrations[:0]
	for _, t := range h.Registrations {
		if t.TeamID != teamID {
			kept = append(kept, t)
		}
	}
	h.Registrations = kept
}

// RemoveMember takes one member out of a team inside the hackathon
// document. A departing leader promotes the first remaining member; a
// team left with neither leader nor members is deleted from
// registrations. Returns whether the team was deleted.
func RemoveMember(h *models.Hackathon, teamID, email string) (bool, error) {
	team := h.FindTeam(teamID)
	if team == nil {
		return false, ErrTeamNotFound
	}

	email = NormalizeEmail(email)
	if team.TeamLeader != nil && NormalizeEmail(team.TeamLeader.Email) == email {
		if len(team.TeamMembers) > 0 {
			promoted := team.TeamMembers[0]
			team.TeamMembers = team.TeamMembers[1:]
			team.TeamLeader = &promoted
			return false, nil
		}
		removeTeam(h, teamID)
		return true, nil
	}

	kept := team.TeamMembers[:0]
	for _, m := range team.TeamMembers {
		if NormalizeEmail(m.Email) != email {
			kept = append(kept, m)
		}
	}
	team.TeamMembers = kept

	if team.TeamLeader == nil && len(team.TeamMembers) == 0 {
		removeTeam(h, teamID)
		return true, nil
	}
	return false, nil
}
