package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/uniwell/mindcare/internal/middleware"
	"github.com/uniwell/mindcare/internal/services"
)

// NewRouter builds the gin engine with every route group mounted.
func NewRouter(hb *HandlerBundle) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.SecureHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.WithAuth())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MindCare"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", hb.SignInHandler)
		auth.POST("/logout", middleware.RequireAuth(), hb.SignOutHandler)
	}

	session := r.Group("/api/session")
	session.Use(middleware.RequireAuth())
	{
		session.GET("", hb.SessionHandler)
		session.POST("/navigate", hb.NavigateHandler)
		session.PUT("/preferences", hb.PreferencesHandler)
	}

	assessments := r.Group("/api/assessments")
	assessments.Use(middleware.RequireAuth())
	{
		assessments.GET("", hb.ListAssessmentsHandler)
		assessments.POST("/:id/start", hb.StartAssessmentHandler)
	}

	attempts := r.Group("/api/attempts")
	attempts.Use(middleware.RequireAuth())
	{
		attempts.POST("/:id/answer", hb.AnswerHandler)
		attempts.POST("/:id/next", hb.AdvanceHandler)
		attempts.POST("/:id/back", hb.RetreatHandler)
		attempts.POST("/:id/submit", hb.SubmitHandler)
		attempts.DELETE("/:id", hb.AbandonHandler)
	}

	counselors := r.Group("/api/counselors")
	counselors.Use(middleware.RequireAuth())
	{
		counselors.GET("", hb.ListCounselorsHandler)
		counselors.GET("/:id/slots", hb.AvailableSlotsHandler)
		counselors.GET("/:id/schedule",
			middleware.RequireAction(services.ActionConfirmAppointment), hb.CounselorScheduleHandler)
		counselors.PUT("/:id/availability",
			middleware.RequireAction(services.ActionManageAvailability), hb.AddAvailabilityHandler)
	}

	appointments := r.Group("/api/appointments")
	appointments.Use(middleware.RequireAuth())
	{
		appointments.GET("", hb.ListAppointmentsHandler)
		appointments.POST("", hb.BookHandler)
		appointments.POST("/:id/cancel", hb.CancelAppointmentHandler)
		appointments.POST("/:id/confirm",
			middleware.RequireAction(services.ActionConfirmAppointment), hb.ConfirmAppointmentHandler)
		appointments.POST("/:id/complete",
			middleware.RequireAction(services.ActionCompleteAppointment), hb.CompleteAppointmentHandler)
	}

	journal := r.Group("/api/journal")
	journal.Use(middleware.RequireAuth())
	{
		journal.GET("/entries", hb.ListEntriesHandler)
		journal.POST("/entries", hb.CreateEntryHandler)
		journal.GET("/mood-trend", hb.MoodTrendHandler)
	}

	habits := r.Group("/api/habits")
	habits.Use(middleware.RequireAuth())
	{
		habits.GET("", hb.ListHabitsHandler)
		habits.POST("", hb.CreateHabitHandler)
		habits.POST("/:id/progress", hb.HabitProgressHandler)
		habits.PATCH("/:id", hb.UpdateHabitHandler)
		habits.DELETE("/:id", hb.DeleteHabitHandler)
	}

	community := r.Group("/api/community")
	community.Use(middleware.RequireAuth())
	{
		community.GET("/posts", hb.ListPostsHandler)
		community.POST("/posts", hb.CreatePostHandler)
		community.POST("/posts/:id/like", hb.LikePostHandler)
		community.POST("/posts/:id/comments", hb.AddCommentHandler)
		community.GET("/events", hb.ListEventsHandler)
		community.POST("/events/:id/register", hb.ToggleRegistrationHandler)
	}

	resources := r.Group("/api/resources")
	resources.Use(middleware.RequireAuth())
	{
		resources.GET("", hb.ListResourcesHandler)
		resources.GET("/:id", hb.GetResourceHandler)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireAction(services.ActionViewAnalytics))
	{
		admin.GET("/analytics", hb.AnalyticsSummaryHandler)
		admin.GET("/analytics/:id/alpha", hb.AlphaHandler)
		admin.GET("/export/results",
			middleware.RequireAction(services.ActionExportReport), hb.ExportResultsHandler)
		admin.GET("/export/appointments",
			middleware.RequireAction(services.ActionExportReport), hb.ExportAppointmentsHandler)
		admin.GET("/report",
			middleware.RequireAction(services.ActionExportReport), hb.ReportHandler)
	}

	return r
}
