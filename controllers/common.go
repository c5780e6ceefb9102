// file: controllers/common.go
package controllers

import (
	"errors"
	"net/http"

	"hatch/database"
	"hatch/services"

	"github.com/gin-gonic/gin"
)

// storeErrStatus maps store/service errors onto the HTTP taxonomy.
func storeErrStatus(err error) int {
	switch {
	case errors.Is(err, database.ErrHackathonNotFound),
		errors.Is(err, database.ErrProfileNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrSubmissionNotFound),
		errors.Is(err, services.ErrSponsorNotFound):
		return http.StatusNotFound
	case errors.Is(err, database.ErrWriteConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func currentUserEmail(c *gin.Context) string {
	email, _ := c.Get("user_email")
	s, _ := email.(string)
	return s
}
