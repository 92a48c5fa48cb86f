package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wellbook/handlers"
	"wellbook/utils"
)

// RegisterProviderRoutes registers provider discovery endpoints.
func RegisterProviderRoutes(r *gin.Engine, h *handlers.ReservationHandler) {
	api := r.Group("/api/providers")
	{
		api.GET("", h.GetProvidersHandler)
		api.POST("/search", h.SearchProviders)
	}
}

// RegisterBookingRoutes sets up the endpoints for slot reservation.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.ReservationHandler) {
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/clients/:id/bookings", h.ListClientBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.ReservationHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProviderRoutes(r, h)
	RegisterBookingRoutes(r, h)
	RegisterHealthRoute(r)
}
