package routes

import (
	"net/http"
	"time"

	"legato/handlers"
	"legato/middleware"
	"legato/models"
	"legato/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register/client", hb.Auth.RegisterClientHandler)
		api.POST("/register/lawyer", hb.Auth.RegisterLawyerHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.SessionAuth())
		api.GET("/me", hb.Auth.MeHandler)
		api.PUT("/me", hb.Auth.UpdateProfileHandler)
	}
}

// RegisterMarketplaceRoutes registers the public lawyer marketplace plus
// the guarded booking flow under a lawyer profile.
func RegisterMarketplaceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyers")
	{
		api.GET("", hb.Lawyer.ListLawyersHandler)
		api.GET("/:id", hb.Lawyer.GetLawyerHandler)

		// Booking after lawyer selection requires a client session.
		api.POST("/:id/booking", middleware.SessionAuth(models.RoleClient), hb.Booking.CreateBookingHandler)
	}
}

// RegisterDashboardRoutes registers the endpoints backing the dashboards.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.SessionAuth())
		api.GET("/bookings", hb.Booking.ListBookingsHandler)
		api.PATCH("/bookings/:id", hb.Booking.UpdateBookingStatusHandler)
		api.GET("/documents", hb.Dashboard.ListDocumentsHandler)
		api.POST("/documents", hb.Dashboard.CreateDocumentHandler)
		api.DELETE("/documents/:id", hb.Dashboard.DeleteDocumentHandler)
		api.GET("/reviews", hb.Dashboard.ListMyReviewsHandler)

		// Lawyer-only endpoints.
		lawyer := api.Group("")
		lawyer.Use(middleware.SessionAuth(models.RoleLawyer))
		lawyer.GET("/earnings", hb.Booking.EarningsHandler)
		lawyer.GET("/todos", hb.Dashboard.ListTodosHandler)
		lawyer.POST("/todos", hb.Dashboard.CreateTodoHandler)
		lawyer.PATCH("/todos/:id", hb.Dashboard.ToggleTodoHandler)
		lawyer.DELETE("/todos/:id", hb.Dashboard.DeleteTodoHandler)

		// Client-only endpoints.
		client := api.Group("")
		client.Use(middleware.SessionAuth(models.RoleClient))
		client.POST("/reviews", hb.Dashboard.CreateReviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Page-level route protection (redirects); API routes enforce their own
	// session middleware.
	r.Use(middleware.RouteGuard())

	RegisterAuthRoutes(r, hb)
	RegisterMarketplaceRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
