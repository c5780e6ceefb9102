// file: services/results_service.go
package services

import (
	"fmt"
	"log"

	"hatch/metrics"
	"hatch/models"
)

type CertificateDetail struct {
	TeamID           string `json:"teamId"`
	TeamName         string `json:"teamName"`
	ParticipantName  string `json:"participantName,omitempty"`
	ParticipantEmail string `json:"participantEmail,omitempty"`
	Rank             int    `json:"rank,omitempty"`
	Achievement      string `json:"achievement,omitempty"`
	Status           string `json:"status"`
	Reason           string `json:"reason,omitempty"`
	CertificateURL   string `json:"certificate_url,omitempty"`
}

type CertificateStatus struct {
	TotalTeams       int                 `json:"total_teams"`
	CertificatesSent int                 `json:"certificates_sent"`
	FailedSends      int                 `json:"failed_sends"`
	Details          []CertificateDetail `json:"details"`
}

// CertificateSender delivers one certificate email. Swapped out in
// tests.
type CertificateSender func(email, name, eventName, certificateURL, achievement, subjectPrefix, organizerName string) error

// AchievementForRank classifies a leaderboard rank.
func AchievementForRank(rank int) (achievement, subjectPrefix string) {
	switch rank {
	case 1:
		return "First Place Winner", "WINNER!"
	case 2:
		return "Second Place Winner", "RUNNER-UP!"
	case 3:
		return "Third Place Winner", "THIRD PLACE!"
	default:
		return "Certificate of Participation", "PARTICIPANT!"
	}
}

// OrganizerName returns the display name of the first organiser.
func OrganizerName(h *models.Hackathon) string {
	if len(h.Organisers) > 0 && h.Organisers[0].Name != "" {
		return h.Organisers[0].Name
	}
	return "Event Organizer"
}

// DistributeCertificates fans a certificate email out to the leader of
// every leaderboard team. Sends are mutually independent: each failure
// is recorded per recipient and never aborts the rest, and no retry is
// attempted.
func DistributeCertificates(h *models.Hackathon, leaderboard []models.LeaderboardEntry, baseURL string, send CertificateSender) CertificateStatus {
	status := CertificateStatus{
		TotalTeams: len(leaderboard),
		Details:    []CertificateDetail{},
	}

	eventName := h.EventName
	if eventName == "" {
		eventName = "Hackathon Event"
	}
	organizerName := OrganizerName(h)

	for _, entry := range leaderboard {
		team := h.FindTeam(entry.TeamID)
		if team == nil {
			status.FailedSends++
			status.Details = append(status.Details, CertificateDetail{
				TeamID:   entry.TeamID,
				TeamName: entry.TeamName,
				Status:   "failed",
				Reason:   "Team details not found",
			})
			continue
		}

		var participantEmail, participantName string
		if team.TeamLeader != nil {
			participantEmail = team.TeamLeader.Email
			participantName = team.TeamLeader.Name
		}
		if participantName == "" {
			participantName = "Participant"
		}
		if participantEmail == "" {
			status.FailedSends++
			status.Details = append(status.Details, CertificateDetail{
				TeamID:   entry.TeamID,
				TeamName: entry.TeamName,
				Status:   "failed",
				Reason:   "No email address found",
			})
			continue
		}

		certificateURL := fmt.Sprintf("%s/certificate?hackCode=%s&teamId=%s&rank=%d",
			baseURL, h.HackCode, entry.TeamID, entry.Rank)
		achievement, subjectPrefix := AchievementForRank(entry.Rank)

		err := send(participantEmail, participantName, eventName, certificateURL, achievement, subjectPrefix, organizerName)
		if err != nil {
			log.Printf("Failed to send certificate email to %s: %v", participantEmail, err)
			metrics.CertificatesFailed.Inc()
			status.FailedSends++
			status.Details = append(status.Details, CertificateDetail{
				TeamID:           entry.TeamID,
				TeamName:         entry.TeamName,
				ParticipantName:  participantName,
				ParticipantEmail: participantEmail,
				Status:           "failed",
				Reason:           "Email sending failed",
			})
			continue
		}

		metrics.CertificatesSent.Inc()
		status.CertificatesSent++
		status.Details = append(status.Details, CertificateDetail{
			TeamID:           entry.TeamID,
			TeamName:         entry.TeamName,
			ParticipantName:  participantName,
			ParticipantEmail: participantEmail,
			Rank:             entry.Rank,
			Achievement:      achievement,
			Status:           "sent",
			CertificateURL:   certificateURL,
		})
	}

	return status
}
