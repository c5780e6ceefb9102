// file: routes/router.go
package routes

import (
	"net/http"

	"hatch/controllers"
	"hatch/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"https://thecodeworks.in/hatch",
			"http://localhost:8000",
		},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.LoadHTMLGlob("templates/*.html")

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- credential issuance ---
	r.POST("/signup", controllers.Signup)
	r.POST("/login", controllers.Login)

	// --- public hackathon reads ---
	r.GET("/allHacks", controllers.GetAllHacks)
	r.GET("/fetchhack", controllers.FetchHack)
	r.GET("/results", controllers.GetResults)
	r.GET("/certificate", controllers.Certificate)

	// --- announcements ---
	r.POST("/announcements", controllers.CreateAnnouncement)
	r.GET("/announcements", controllers.GetAnnouncements)

	// --- sponsor showcases ---
	r.GET("/sponsor-showcase", controllers.GetSponsorShowcases)

	// --- plagiarism collaborator ---
	r.POST("/check-plagiarism", controllers.CheckPlagiarism)

	// --- token-protected surface ---
	auth := r.Group("/")
	auth.Use(middlewares.JWTAuthMiddleware())
	{
		auth.POST("/hack-create", controllers.CreateHack)
		auth.POST("/registerteam", controllers.RegisterTeam)
		auth.POST("/managehack", controllers.ManageHack)
		auth.POST("/getTeamDetails", controllers.GetTeamDetails)
		auth.POST("/leaveTeam", controllers.LeaveTeam)
		auth.POST("/submissions", controllers.SaveSubmission)
		auth.GET("/fetchsubmissions", controllers.FetchSubmissions)
		auth.POST("/grading", controllers.Grade)
		auth.POST("/eliminate", controllers.Eliminate)
		auth.POST("/publishresults", controllers.PublishResults)
		auth.POST("/sponsor-showcase", controllers.AddSponsorShowcase)
		auth.POST("/sponsor-showcase/reorder", controllers.ReorderSponsorShowcases)
		auth.DELETE("/sponsor-showcase/:sponsor_name", controllers.RemoveSponsorShowcase)
	}

	return r
}
