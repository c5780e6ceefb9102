// file: controllers/registration_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hatch/database"
	"hatch/metrics"
	"hatch/models"
	"hatch/services"
	"hatch/utils"

	"github.com/gin-gonic/gin"
)

// RegisterTeam validates and registers a team for one hackathon. One
// teamId is generated per call and shared by every member; profiles are
// updated member-by-member before the team is appended to the document,
// so a failure partway through leaves earlier profile writes committed
// while the request reports failure.
func RegisterTeam(c *gin.Context) {
	var req struct {
		HackCode       string                 `json:"hackCode" binding:"required"`
		TeamName       string                 `json:"teamName"`
		TeamLeader     models.Member          `json:"teamLeader"`
		TeamMembers    []models.Member        `json:"teamMembers"`
		PaymentDetails map[string]interface{} `json:"paymentDetails"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "hackathonCode is required")
		return
	}
	ctx := c.Request.Context()

	if _, err := database.GetHackathon(ctx, req.HackCode); err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return
	}

	leaderEmail := services.NormalizeEmail(req.TeamLeader.Email)
	if leaderEmail == "" {
		utils.Error(c, http.StatusBadRequest, "Team leader email required")
		return
	}

	leaderProfile, err := database.GetProfile(ctx, leaderEmail)
	if err != nil && !errors.Is(err, database.ErrProfileNotFound) {
		utils.Error(c, http.StatusInternalServerError, "Failed to validate leader: "+err.Error())
		return
	}
	if leaderProfile != nil && leaderProfile.RegistrationFor(req.HackCode) != nil {
		utils.Error(c, http.StatusConflict, "Leader "+leaderEmail+" already registered in this hackathon")
		return
	}

	// One teamId per call, shared by all members.
	teamID := utils.GenerateTeamID()

	allMembers := append([]models.Member{req.TeamLeader}, req.TeamMembers...)
	finalMembers := []models.Member{}

	for _, member := range allMembers {
		email := services.NormalizeEmail(member.Email)
		if email == "" {
			continue
		}

		profile, err := database.GetProfile(ctx, email)
		if err != nil && !errors.Is(err, database.ErrProfileNotFound) {
			utils.Error(c, http.StatusInternalServerError, "Failed to process member "+email+": "+err.Error())
			return
		}
		if profile != nil && profile.RegistrationFor(req.HackCode) != nil {
			if email == leaderEmail {
				utils.Error(c, http.StatusConflict, "Leader "+email+" already registered")
				return
			}
			// Member already belongs to a team in this hackathon; skip
			// silently, the rest of the team still registers.
			continue
		}

		err = database.AddProfileRegistration(ctx, email, models.RegistrationRef{
			HackCode: req.HackCode,
			TeamID:   teamID,
		})
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, "Failed to process member "+email+": "+err.Error())
			return
		}

		member.Email = email
		finalMembers = append(finalMembers, member)

		// Fire-and-forget: notification problems never roll back the
		// registration.
		services.QueueTeamWelcome(email, req.TeamLeader.Name)
	}

	if err := services.ValidateFinalMembers(finalMembers, leaderEmail); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	team := services.BuildTeam(teamID, req.TeamName, finalMembers, req.PaymentDetails)

	_, err = database.MutateHackathon(ctx, req.HackCode, func(h *models.Hackathon) error {
		h.Registrations = append(h.Registrations, team)
		return nil
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to register team: "+err.Error())
		return
	}

	metrics.TeamRegistrations.Inc()
	utils.Created(c, "Team registered successfully", gin.H{"team": team})
}

func GetTeamDetails(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		HackCode string `json:"hackCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "email and hackCode are required")
		return
	}
	email := services.NormalizeEmail(req.Email)
	ctx := c.Request.Context()

	profile, err := database.GetProfile(ctx, email)
	if errors.Is(err, database.ErrProfileNotFound) {
		utils.Success(c, "User not found", gin.H{
			"registrationStatus": "no",
			"team":               nil,
		})
		return
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch user: "+err.Error())
		return
	}

	reg := profile.RegistrationFor(req.HackCode)
	if reg == nil {
		utils.Success(c, "User "+email+" is not registered in hackathon "+req.HackCode, gin.H{
			"registrationStatus": "no",
			"team":               nil,
		})
		return
	}

	hack, err := database.GetHackathon(ctx, req.HackCode)
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return
	}

	utils.Success(c, "Team details fetched successfully", gin.H{
		"registrationStatus": "yes",
		"hackathon": gin.H{
			"hackCode":         hack.HackCode,
			"eventName":        hack.EventName,
			"eventDescription": hack.EventDescription,
			"eventStartDate":   hack.EventStartDate,
			"eventEndDate":     hack.EventEndDate,
		},
		"team": hack.FindTeam(reg.TeamID),
	})
}

// LeaveTeam removes the caller from their team. The hackathon document
// is updated first, then the profile entry is always removed, whether
// the team shrank or disappeared.
func LeaveTeam(c *gin.Context) {
	var req struct {
		HackCode string `json:"hackCode" binding:"required"`
		Email    string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "hackCode and email are required")
		return
	}
	email := services.NormalizeEmail(req.Email)
	ctx := c.Request.Context()

	profile, err := database.GetProfile(ctx, email)
	if errors.Is(err, database.ErrProfileNotFound) {
		utils.Error(c, http.StatusNotFound, "User "+email+" not found")
		return
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch user: "+err.Error())
		return
	}

	reg := profile.RegistrationFor(req.HackCode)
	if reg == nil {
		utils.Error(c, http.StatusNotFound, "User "+email+" not registered in hackathon "+req.HackCode)
		return
	}

	_, err = database.MutateHackathon(ctx, req.HackCode, func(h *models.Hackathon) error {
		_, err := services.RemoveMember(h, reg.TeamID, email)
		return err
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to update team: "+err.Error())
		return
	}

	if err := database.RemoveProfileRegistration(ctx, email, *reg); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to update user record: "+err.Error())
		return
	}

	utils.Success(c, email+" left team "+reg.TeamID+" in hackathon "+req.HackCode+" successfully", nil)
}
