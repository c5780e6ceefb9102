// file: controllers/plagiarism_controller.go
package controllers

import (
	"errors"
	"net/http"

	"hatch/services"
	"hatch/utils"

	"github.com/gin-gonic/gin"
)

// CheckPlagiarism delegates repository analysis to the external
// collaborator. The check is bounded by a hard timeout; on expiry the
// caller gets 408 while the analysis may keep running on the remote
// side.
func CheckPlagiarism(c *gin.Context) {
	var req struct {
		RepositoryURL string `json:"repository_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "repository_url is required")
		return
	}

	report, err := services.CheckRepository(c.Request.Context(), req.RepositoryURL)
	switch {
	case err == nil:
		utils.Success(c, "success", report)
	case errors.Is(err, services.ErrNotGitHubURL):
		utils.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAnalyzerUnavailable):
		utils.Error(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, services.ErrAnalysisTimeout):
		utils.Error(c, http.StatusRequestTimeout, "Repository analysis took too long. Try with a smaller repository.")
	default:
		utils.Error(c, http.StatusInternalServerError, "Analysis failed: "+err.Error())
	}
}
