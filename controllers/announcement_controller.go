// file: controllers/announcement_controller.go
package controllers

import (
	"net/http"
	"time"

	"hatch/database"
	"hatch/models"
	"hatch/services"
	"hatch/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateAnnouncement(c *gin.Context) {
	var req struct {
		HackCode   string `json:"hackCode" binding:"required"`
		Title      string `json:"title" binding:"required"`
		Content    string `json:"content" binding:"required"`
		ExpiryDate string `json:"expiryDate" binding:"required"`
		UserEmail  string `json:"userEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	expiry, err := time.Parse(time.RFC3339, req.ExpiryDate)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid expiry date format")
		return
	}
	if !expiry.After(time.Now().UTC()) {
		utils.Error(c, http.StatusBadRequest, "Expiry date must be in the future")
		return
	}

	announcement := models.Announcement{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Content:    req.Content,
		CreatedBy:  req.UserEmail,
		CreatedAt:  time.Now().UTC(),
		ExpiryDate: expiry,
	}

	_, err = database.MutateHackathon(c.Request.Context(), req.HackCode, func(h *models.Hackathon) error {
		h.Announcements = append(h.Announcements, announcement)
		return nil
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to create announcement: "+err.Error())
		return
	}

	utils.Created(c, "Announcement created successfully", gin.H{"announcement": announcement})
}

func GetAnnouncements(c *gin.Context) {
	hackCode := c.Query("hackCode")
	if hackCode == "" {
		utils.Error(c, http.StatusBadRequest, "hackCode is required")
		return
	}
	includeExpired := c.DefaultQuery("includeExpired", "false") == "true"

	hack, err := database.GetHackathon(c.Request.Context(), hackCode)
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return
	}

	announcements := hack.Announcements
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	if !includeExpired {
		announcements = services.FilterActiveAnnouncements(announcements, time.Now().UTC())
	}

	utils.Success(c, "success", gin.H{"announcements": announcements})
}
