package routes

import (
	"net/http"
	"time"

	"fixify/handlers"
	"fixify/middleware"
	"fixify/models"
	"fixify/utils"

	userRepo "fixify/database/repository/user"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and all route groups onto a gin engine.
func SetupRouter(b *handlers.HandlerBundle, authClient *auth.Client, users userRepo.UserRepository) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	registerUserRoutes(api, b, authClient, users)
	registerAvailabilityRoutes(api, b, authClient, users)
	registerRequestRoutes(api, b, authClient, users)
	registerScheduleRoutes(api, b, authClient, users)
	registerChatRoutes(api, b, authClient, users)
	registerAdminRoutes(api, b)

	return router
}

func registerUserRoutes(api *gin.RouterGroup, b *handlers.HandlerBundle, authClient *auth.Client, users userRepo.UserRepository) {
	// Profile creation only needs a verified token; no profile exists yet.
	api.POST("/users/profile", middleware.FirebaseTokenMiddleware(authClient), b.Users.CreateProfile)

	me := api.Group("/users", middleware.FirebaseAuthMiddleware(authClient, users))
	me.GET("/me", b.Users.GetProfile)
	me.PUT("/me/fcm-token", b.Users.UpdateFCMToken)
}

func registerAvailabilityRoutes(api *gin.RouterGroup, b *handlers.HandlerBundle, authClient *auth.Client, users userRepo.UserRepository) {
	api.GET("/availability",
		middleware.FirebaseAuthMiddleware(authClient, users),
		b.Availability.GetOpenSlots,
	)
}

func registerRequestRoutes(api *gin.RouterGroup, b *handlers.HandlerBundle, authClient *auth.Client, users userRepo.UserRepository) {
	reqs := api.Group("/requests", middleware.FirebaseAuthMiddleware(authClient, users))

	reqs.POST("", middleware.RequireRole(models.RoleCustomer), b.Requests.CreateRequest)
	reqs.GET("/mine", middleware.RequireRole(models.RoleCustomer), b.Requests.MyRequests)
	reqs.GET("/feed", middleware.RequireRole(models.RoleTechnician), b.Requests.TechnicianFeed)
	reqs.GET("/:id", b.Requests.GetRequest)

	reqs.PATCH("/:id/status", b.Booking.UpdateStatus)
	reqs.POST("/:id/rating", b.Rating.SubmitRating)

	reqs.POST("/:id/photo", middleware.RequireRole(models.RoleCustomer), b.Storage.UploadRequestPhoto)
	reqs.POST("/:id/invoice", middleware.RequireRole(models.RoleTechnician), b.Payments.IssueInvoice)
	reqs.POST("/:id/payment/confirm", middleware.RequireRole(models.RoleCustomer), b.Payments.MarkPaid)
}

func registerScheduleRoutes(api *gin.RouterGroup, b *handlers.HandlerBundle, authClient *auth.Client, users userRepo.UserRepository) {
	sched := api.Group("/schedule",
		middleware.FirebaseAuthMiddleware(authClient, users),
		middleware.RequireRole(models.RoleTechnician),
	)
	sched.GET("/:date", b.Schedule.GetBlackouts)
	sched.POST("/:date/block", b.Schedule.BlockSlot)
	sched.POST("/:date/unblock", b.Schedule.UnblockSlot)
}

func registerChatRoutes(api *gin.RouterGroup, b *handlers.HandlerBundle, authClient *auth.Client, users userRepo.UserRepository) {
	chat := api.Group("/chat", middleware.FirebaseAuthMiddleware(authClient, users))
	chat.GET("/conversations", b.Chat.ListConversations)
	chat.GET("/conversations/:id/messages", b.Chat.ListMessages)
	chat.POST("/conversations/:id/messages", b.Chat.SendMessage)
}

func registerAdminRoutes(api *gin.RouterGroup, b *handlers.HandlerBundle) {
	api.POST("/admin/login", b.Admin.Login)

	admin := api.Group("/admin", middleware.AdminAuthMiddleware())
	admin.GET("/requests", b.Admin.ListRequests)
	admin.GET("/users", b.Admin.ListUsers)
}
