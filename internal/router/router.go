package router

import (
	"github.com/aitbensouda/krili-backend/internal/handlers"
	"github.com/aitbensouda/krili-backend/internal/middleware"
	"github.com/aitbensouda/krili-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New builds the gin engine with every route of the marketplace API.
func New(db *gorm.DB, hub *services.Hub) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Locally stored vehicle images
	r.Static("/uploads", "./uploads")

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register(db))
		auth.POST("/login", handlers.Login(db))
	}

	agencies := r.Group("/agencies")
	{
		agencies.GET("", handlers.GetAgencies(db))
		agencies.GET("/:id/vehicles", handlers.GetAgencyVehicles(db))
		agencies.GET("/:id/reviews", handlers.GetAgencyReviews(db))
		agencies.POST("/:id/reviews", handlers.CreateReview(db))
	}

	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", handlers.GetVehicles(db))
		vehicles.POST("", handlers.CreateVehicle(db))
		vehicles.PUT("/:id", handlers.UpdateVehicle(db))
		vehicles.DELETE("/:id", handlers.DeleteVehicle(db))
		vehicles.POST("/:id/images", handlers.UploadVehicleImage(db))
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", handlers.CreateBooking(db, hub))
		bookings.GET("/my", handlers.GetMyBookings(db))
		bookings.GET("/agency/:agencyId", handlers.GetAgencyBookings(db))
		bookings.PATCH("/:id/status", handlers.UpdateBookingStatus(db, hub))
	}

	// Routes that need an authenticated identity
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		users := protected.Group("/users")
		{
			users.GET("/profile", handlers.GetProfile(db))
			users.PUT("/profile", handlers.UpdateProfile(db))
		}

		protected.GET("/ws", handlers.WebSocketHandler(hub))
	}

	return r
}
