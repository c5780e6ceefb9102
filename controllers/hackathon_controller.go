// file: controllers/hackathon_controller.go
package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hatch/database"
	"hatch/models"
	"hatch/services"
	"hatch/utils"

	"github.com/gin-gonic/gin"
)

const allHacksCacheKey = "hacks:all"

func CreateHack(c *gin.Context) {
	userEmail := currentUserEmail(c)

	var req struct {
		EventName        string                 `json:"eventName"`
		EventDescription string                 `json:"eventDescription"`
		EventStartDate   string                 `json:"eventStartDate"`
		EventEndDate     string                 `json:"eventEndDate"`
		Organisers       []models.Organiser     `json:"organisers"`
		Metadata         map[string]interface{} `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	hackCode := utils.GenerateHackCode()
	hack := models.Hackathon{
		HackCode:         hackCode,
		EventName:        req.EventName,
		EventDescription: req.EventDescription,
		EventStartDate:   req.EventStartDate,
		EventEndDate:     req.EventEndDate,
		Organisers:       req.Organisers,
		Admins:           []string{userEmail},
		Metadata:         req.Metadata,
		CreatedAt:        time.Now().UTC(),
	}

	ctx := c.Request.Context()
	if err := database.InsertHackathon(ctx, &hack); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Hackathon insert failed: "+err.Error())
		return
	}
	if err := database.AddProfileCreated(ctx, userEmail, hackCode); err != nil {
		// The hackathon exists either way; the creator index is advisory.
		log.Printf("Failed to record created hackathon for %s: %v", userEmail, err)
	}
	database.RDB.Del(database.Ctx, allHacksCacheKey)

	log.Printf("Hackathon created successfully: hackCode=%s", hackCode)
	utils.Created(c, "Hackathon created", gin.H{
		"hackCode": hackCode,
		"id":       hackCode,
	})
}

func GetAllHacks(c *gin.Context) {
	if val, err := database.RDB.Get(database.Ctx, allHacksCacheKey).Result(); err == nil {
		var hacks []models.Hackathon
		if json.Unmarshal([]byte(val), &hacks) == nil {
			utils.Success(c, "success (from cache)", hacks)
			return
		}
	}

	hacks, err := database.ListHackathons(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch hackathons: "+err.Error())
		return
	}

	if jsonData, err := json.Marshal(hacks); err == nil {
		// Short TTL keeps the listing near-realtime.
		database.RDB.Set(database.Ctx, allHacksCacheKey, jsonData, 15*time.Second)
	}

	utils.Success(c, "success", hacks)
}

func FetchHack(c *gin.Context) {
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
	utils.Success(c, "success", hack)
}

// ManageHack multiplexes the admin actions view/update/add_admin/
// remove_admin over one endpoint.
func ManageHack(c *gin.Context) {
	var req struct {
		HackCode     string                 `json:"hackCode" binding:"required"`
		Action       string                 `json:"action" binding:"required"`
		UpdateFields map[string]interface{} `json:"updateFields"`
		AdminEmail   string                 `json:"adminEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "hackCode and action are required")
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
		utils.Error(c, http.StatusForbidden, "Not authorized. Only admins can manage this hackathon.")
		return
	}

	switch req.Action {
	case "view":
		utils.Success(c, "success", hack)

	case "update":
		if len(req.UpdateFields) == 0 {
			utils.Error(c, http.StatusBadRequest, "updateFields is required for update action")
			return
		}
		if err := database.UpdateHackathonFields(ctx, req.HackCode, req.UpdateFields); err != nil {
			utils.Error(c, storeErrStatus(err), "Failed to update hackathon: "+err.Error())
			return
		}
		utils.Success(c, "Hackathon updated successfully", nil)

	case "add_admin":
		newAdmin := services.NormalizeEmail(req.AdminEmail)
		if newAdmin == "" {
			utils.Error(c, http.StatusBadRequest, "adminEmail is required")
			return
		}
		if err := database.AddAdmin(ctx, req.HackCode, newAdmin); err != nil {
			utils.Error(c, storeErrStatus(err), "Failed to add admin: "+err.Error())
			return
		}
		utils.Success(c, newAdmin+" added as admin", nil)

	case "remove_admin":
		removeAdmin := services.NormalizeEmail(req.AdminEmail)
		if removeAdmin == "" {
			utils.Error(c, http.StatusBadRequest, "adminEmail is required")
			return
		}
		if removeAdmin == userEmail {
			utils.Error(c, http.StatusBadRequest, "You cannot remove yourself")
			return
		}
		if err := database.RemoveAdmin(ctx, req.HackCode, removeAdmin); err != nil {
			utils.Error(c, storeErrStatus(err), "Failed to remove admin: "+err.Error())
			return
		}
		utils.Success(c, removeAdmin+" removed from admins", nil)

	default:
		utils.Error(c, http.StatusBadRequest, "Unknown action: "+req.Action)
	}
}
