package routes

import (
	"github.com/gin-gonic/gin"

	"tripmates-api/app"
	"tripmates-api/config"
	"tripmates-api/controllers"
	"tripmates-api/middleware"
)

func SetupRoutes(r *gin.Engine, application *app.App, cfg *config.Config) {
	// Controllers
	authController := controllers.NewAuthController(application, cfg.JWTSecret)
	userController := controllers.NewUserController(application)
	matchController := controllers.NewMatchController(application)
	chatController := controllers.NewChatController(application)
	meetingController := controllers.NewMeetingController(application)
	locationController := controllers.NewLocationController(application)
	profileController := controllers.NewProfileController(application)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(120, 30))

	// Auth routes (public; a stale token still rejects re-registration)
	auth := v1.Group("/auth")
	auth.Use(middleware.OptionalAuthMiddleware(cfg.JWTSecret))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/auth/logout", authController.Logout)

		// User routes
		users := protected.Group("/users")
		{
			users.GET("/me", userController.GetSessionUser)
			users.GET("/", userController.GetUsers)
			users.GET("/:username", userController.GetUserByUsername)
			users.PATCH("/username", userController.UpdateUsername)
			users.PATCH("/password", userController.UpdatePassword)
			users.DELETE("/", userController.DeleteAccount)
		}

		// Matching routes
		protected.POST("/rate", matchController.RateUser)
		protected.GET("/ratings", matchController.GetRatings)
		protected.GET("/matches", matchController.GetMatches)
		protected.GET("/candidates", matchController.GetCandidates)

		// Chat routes
		chats := protected.Group("/chats")
		{
			chats.POST("/", chatController.StartChat)
			chats.GET("/", chatController.GetChats)
			chats.POST("/:id/messages", chatController.SendMessage)
			chats.GET("/:id/messages", chatController.GetMessages)
			chats.DELETE("/:id", chatController.EndChat)
		}

		// Meeting routes
		meetings := protected.Group("/meetings")
		{
			meetings.POST("/", meetingController.ProposeMeeting)
			meetings.GET("/", meetingController.GetMeetings)
			meetings.GET("/:id", meetingController.GetMeeting)
			meetings.PUT("/:id/confirm", meetingController.ConfirmMeeting)
			meetings.PUT("/:id/deny", meetingController.DenyMeeting)
			meetings.PATCH("/:id/emergency-contact", meetingController.SetEmergencyContact)
		}

		// Location routes
		locations := protected.Group("/locations")
		{
			locations.PUT("/", locationController.UpdateLocation)
			locations.POST("/sharing", locationController.SetLocationSharing)
			locations.GET("/view", locationController.ViewLocation)
			locations.GET("/details/:name", locationController.GetLocationDetails)
		}

		// Profile routes
		profile := protected.Group("/profile")
		{
			profile.PATCH("/", profileController.UpdateProfile)
			profile.GET("/", profileController.GetProfile)
			profile.GET("/:user_id", profileController.GetProfileOf)
			profile.DELETE("/", profileController.DeleteProfile)
		}
	}
}
