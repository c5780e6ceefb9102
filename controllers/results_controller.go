// file: controllers/results_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"hatch/database"
	"hatch/models"
	"hatch/services"
	"hatch/utils"

	"github.com/gin-gonic/gin"
)

func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// PublishResults stores the leaderboard on the hackathon document
// (re-publishing replaces any prior record) and then fans certificates
// out to every team leader. Certificate failures never affect the
// response status; they are reported in the per-team summary.
func PublishResults(c *gin.Context) {
	var req struct {
		HackCode    string                    `json:"hackCode" binding:"required"`
		EventName   string                    `json:"eventName"`
		Leaderboard []models.LeaderboardEntry `json:"leaderboard"`
		TotalTeams  int                       `json:"totalTeams"`
		PublishedAt string                    `json:"publishedAt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "hackCode is required")
		return
	}
	userEmail := currentUserEmail(c)
	ctx := c.Request.Context()

	hack, err := database.GetHackathon(ctx, req.HackCode)
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return
	}
	if !hack.IsAdmin(userEmail) {
		utils.Error(c, http.StatusForbidden, "Not authorized. Only admins can publish results.")
		return
	}

	publishedAt := req.PublishedAt
	if publishedAt == "" {
		publishedAt = time.Now().UTC().Format(time.RFC3339)
	}
	results := models.Results{
		EventName:   req.EventName,
		HackCode:    req.HackCode,
		Leaderboard: req.Leaderboard,
		TotalTeams:  req.TotalTeams,
		PublishedAt: publishedAt,
		PublishedBy: userEmail,
	}

	updated, err := database.MutateHackathon(ctx, req.HackCode, func(h *models.Hackathon) error {
		h.Results = &results
		return nil
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to publish results: "+err.Error())
		return
	}
	log.Printf("Results published for hackathon %s by %s", req.HackCode, userEmail)

	certificateStatus := services.DistributeCertificates(updated, results.Leaderboard, requestBaseURL(c), services.SendCertificateEmail)

	utils.Success(c, "Results published successfully", gin.H{
		"results":           results,
		"certificateStatus": certificateStatus,
	})
}

func GetResults(c *gin.Context) {
	hackCode := c.Query("hackCode")
	if hackCode == "" {
		utils.Error(c, http.StatusBadRequest, "hackCode is required")
		return
	}

	hack, err := database.GetHackathon(c.Request.Context(), hackCode)
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return
	}
	if hack.Results == nil {
		utils.Error(c, http.StatusNotFound, "Results not published yet for this hackathon")
		return
	}

	utils.Success(c, "success", gin.H{
		"hackCode": hackCode,
		"results":  hack.Results,
	})
}

// Certificate renders the HTML certificate for one team and rank.
func Certificate(c *gin.Context) {
	hackCode := c.Query("hackCode")
	teamID := c.Query("teamId")
	if hackCode == "" || teamID == "" {
		utils.Error(c, http.StatusBadRequest, "hackCode and teamId are required")
		return
	}

	hack, err := database.GetHackathon(c.Request.Context(), hackCode)
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return
	}

	team := hack.FindTeam(teamID)
	if team == nil {
		utils.Error(c, http.StatusNotFound, "Team not found")
		return
	}

	participantName := "Participant"
	if team.TeamLeader != nil && team.TeamLeader.Name != "" {
		participantName = team.TeamLeader.Name
	}
	eventName := hack.EventName
	if eventName == "" {
		eventName = "Hackathon Event"
	}

	rank, err := strconv.Atoi(c.DefaultQuery("rank", "0"))
	if err != nil {
		rank = 0
	}
	achievement, _ := services.AchievementForRank(rank)

	c.HTML(http.StatusOK, "certificate.html", gin.H{
		"ParticipantName": participantName,
		"TeamName":        team.TeamName,
		"EventName":       eventName,
		"Achievement":     achievement,
		"OrganizerName":   services.OrganizerName(hack),
		"CertificateDate": time.Now().Format("January 2, 2006"),
		"HackCode":        hackCode,
	})
}
