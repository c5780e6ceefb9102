// file: controllers/submission_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"hatch/database"
	"hatch/models"
	"hatch/services"
	"hatch/utils"

	"github.com/gin-gonic/gin"
)

func SaveSubmission(c *gin.Context) {
	var req struct {
		HackCode   string      `json:"hackCode" binding:"required"`
		TeamID     string      `json:"teamId" binding:"required"`
		PhaseIndex *int        `json:"phaseIndex" binding:"required"`
		Content    interface{} `json:"submissions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "hackCode, teamId, phaseIndex and submissions are required")
		return
	}

	_, err := database.MutateHackathon(c.Request.Context(), req.HackCode, func(h *models.Hackathon) error {
		return services.UpsertSubmission(h, req.TeamID, *req.PhaseIndex, req.Content)
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to save submission: "+err.Error())
		return
	}

	utils.Success(c, "Submission saved successfully", gin.H{
		"teamId":     req.TeamID,
		"phaseIndex": *req.PhaseIndex,
		"submission": req.Content,
	})
}

func FetchSubmissions(c *gin.Context) {
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

	submissions := team.Submissions
	if submissions == nil {
		submissions = []models.Submission{}
	}
	utils.Success(c, "success", gin.H{
		"teamId":      teamID,
		"submissions": submissions,
	})
}

// Grade sets the score on an existing submission. Later grades always
// win.
func Grade(c *gin.Context) {
	var req struct {
		HackCode string   `json:"hackCode" binding:"required"`
		TeamID   string   `json:"teamId" binding:"required"`
		PhaseID  *int     `json:"phaseId" binding:"required"`
		Score    *float64 `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "hackCode, teamId, phaseId, and score are required")
		return
	}

	_, err := database.MutateHackathon(c.Request.Context(), req.HackCode, func(h *models.Hackathon) error {
		return services.ApplyScore(h, req.TeamID, *req.PhaseID, *req.Score)
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to save score: "+err.Error())
		return
	}

	utils.Success(c, "Score added successfully", gin.H{
		"teamId":  req.TeamID,
		"phaseId": *req.PhaseID,
		"score":   *req.Score,
	})
}

// Eliminate recomputes active/inactive status for every registered team
// against a cutoff. Admin-only.
func Eliminate(c *gin.Context) {
	hackCode := c.Query("hackCode")
	phaseID, phaseErr := strconv.Atoi(c.Query("phaseId"))

	var req struct {
		CutoffScore *float64 `json:"cutoff_score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || hackCode == "" || phaseErr != nil {
		utils.Error(c, http.StatusBadRequest, "hackCode, phaseId, and cutoff_score required")
		return
	}
	ctx := c.Request.Context()

	hack, err := database.GetHackathon(ctx, hackCode)
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return
	}
	if !hack.IsAdmin(currentUserEmail(c)) {
		utils.Error(c, http.StatusForbidden, "Not authorized. Only admins can run elimination.")
		return
	}

	var result services.EliminationResult
	_, err = database.MutateHackathon(ctx, hackCode, func(h *models.Hackathon) error {
		result = services.Eliminate(h, phaseID, *req.CutoffScore)
		return nil
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to update eliminations: "+err.Error())
		return
	}

	utils.Success(c, "Elimination completed", gin.H{
		"cutoff_score": *req.CutoffScore,
		"updatedTeams": result,
	})
}
