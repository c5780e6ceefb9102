// file: controllers/sponsor_controller.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"hatch/database"
	"hatch/models"
	"hatch/services"
	"hatch/utils"

	"github.com/gin-gonic/gin"
)

// fetchHackForAdmin loads the hackathon and enforces the admin gate
// shared by the sponsor showcase write endpoints.
func fetchHackForAdmin(c *gin.Context, hackCode string) *models.Hackathon {
	hack, err := database.GetHackathon(c.Request.Context(), hackCode)
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return nil
	}
	if !hack.IsAdmin(currentUserEmail(c)) {
		utils.Error(c, http.StatusForbidden, "Not authorized. Only admins can manage sponsor showcases.")
		return nil
	}
	return hack
}

func AddSponsorShowcase(c *gin.Context) {
	var req struct {
		HackCode    string             `json:"hackCode" binding:"required"`
		SponsorName string             `json:"sponsorName" binding:"required"`
		YoutubeURL  string             `json:"youtubeUrl" binding:"required"`
		Title       string             `json:"title" binding:"required"`
		Description string             `json:"description"`
		Tier        models.SponsorTier `json:"tier"`
		Logo        string             `json:"logo"`
		Website     string             `json:"website"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "hackCode, sponsorName, youtubeUrl, and title are required")
		return
	}

	videoID, err := utils.ValidateYouTubeURL(req.YoutubeURL)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if fetchHackForAdmin(c, req.HackCode) == nil {
		return
	}

	tier := req.Tier
	if tier == "" {
		tier = models.TierBronze
	}
	showcase := models.Showcase{
		YoutubeURL:  req.YoutubeURL,
		VideoID:     videoID,
		Title:       req.Title,
		Description: req.Description,
		UploadedAt:  time.Now().UTC(),
		IsActive:    true,
	}

	_, err = database.MutateHackathon(c.Request.Context(), req.HackCode, func(h *models.Hackathon) error {
		services.UpsertShowcase(h, req.SponsorName, tier, req.Logo, req.Website, showcase)
		return nil
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to update sponsor showcase: "+err.Error())
		return
	}

	log.Printf("Sponsor showcase added/updated for %s in hackathon %s", req.SponsorName, req.HackCode)
	utils.Created(c, "Sponsor showcase added/updated successfully", gin.H{
		"sponsorName": req.SponsorName,
		"videoId":     videoID,
		"showcase":    showcase,
	})
}

func GetSponsorShowcases(c *gin.Context) {
	hackCode := c.Query("hackCode")
	if hackCode == "" {
		utils.Error(c, http.StatusBadRequest, "hackCode is required")
		return
	}
	activeOnly := c.DefaultQuery("activeOnly", "false") == "true"

	hack, err := database.GetHackathon(c.Request.Context(), hackCode)
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to fetch hackathon: "+err.Error())
		return
	}

	showcases := services.ListShowcases(hack, activeOnly)
	utils.Success(c, "success", gin.H{
		"hackCode":  hackCode,
		"eventName": hack.EventName,
		"showcases": showcases,
		"total":     len(showcases),
	})
}

func RemoveSponsorShowcase(c *gin.Context) {
	sponsorName := c.Param("sponsor_name")
	hackCode := c.Query("hackCode")
	action := c.DefaultQuery("action", services.ShowcaseActionDeactivate)

	if hackCode == "" {
		utils.Error(c, http.StatusBadRequest, "hackCode is required")
		return
	}
	if action != services.ShowcaseActionRemove && action != services.ShowcaseActionDeactivate {
		utils.Error(c, http.StatusBadRequest, "action must be 'remove' or 'deactivate'")
		return
	}

	if fetchHackForAdmin(c, hackCode) == nil {
		return
	}

	_, err := database.MutateHackathon(c.Request.Context(), hackCode, func(h *models.Hackathon) error {
		return services.RemoveShowcase(h, sponsorName, action)
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to "+action+" sponsor showcase: "+err.Error())
		return
	}

	log.Printf("Sponsor showcase %sd for %s in hackathon %s", action, sponsorName, hackCode)
	utils.Success(c, "Sponsor showcase "+action+"d successfully", gin.H{
		"sponsorName": sponsorName,
		"action":      action,
	})
}

func ReorderSponsorShowcases(c *gin.Context) {
	var req struct {
		HackCode     string   `json:"hackCode" binding:"required"`
		SponsorOrder []string `json:"sponsorOrder" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "hackCode and sponsorOrder are required")
		return
	}

	if fetchHackForAdmin(c, req.HackCode) == nil {
		return
	}

	var newOrder []string
	_, err := database.MutateHackathon(c.Request.Context(), req.HackCode, func(h *models.Hackathon) error {
		newOrder = services.ReorderSponsors(h, req.SponsorOrder)
		return nil
	})
	if err != nil {
		utils.Error(c, storeErrStatus(err), "Failed to reorder sponsor showcases: "+err.Error())
		return
	}

	utils.Success(c, "Sponsor showcases reordered successfully", gin.H{"newOrder": newOrder})
}
