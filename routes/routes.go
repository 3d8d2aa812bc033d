package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-site-backend/controllers"
	"hotel-site-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires all controllers into the public and admin route groups.
func SetupRouter(
	ac *controllers.AvailabilityController,
	bc *controllers.BookingController,
	rc *controllers.RoomController,
	mc *controllers.MenuController,
	rvc *controllers.ReviewController,
	gc *controllers.GalleryController,
	sc *controllers.SettingsController,
	auc *controllers.AuthController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public site content
		api.GET("/rooms", rc.GetRooms)
		api.GET("/rooms/:id", rc.GetRoomByID)
		api.GET("/menu", mc.GetMenu)
		api.GET("/gallery", gc.GetGallery)
		api.GET("/reviews", rvc.GetReviews)
		api.POST("/reviews", rvc.CreateReview)
		api.GET("/settings", sc.GetPublicSettings)

		// Availability + booking workflow
		api.GET("/availability", ac.CheckAvailability)
		api.GET("/rooms/:id/available-dates", ac.GetAvailableDates)
		api.GET("/rooms/:id/blocked-dates", ac.GetBlockedDates)
		api.POST("/bookings", bc.CreateBooking)
		api.POST("/bookings/validate", bc.ValidateBooking)

		// Admin panel
		admin := api.Group("/admin")
		{
			admin.POST("/login", auc.Login)

			admin.GET("/bookings", bc.GetBookings)
			admin.GET("/bookings/:id", bc.GetBooking)
			admin.POST("/bookings/:id/cancel", bc.CancelBooking)
			admin.POST("/bookings/:id/checkin", bc.CheckInBooking)
			admin.POST("/bookings/:id/checkout", bc.CheckOutBooking)

			admin.GET("/rooms", rc.GetAllRooms)
			admin.POST("/rooms", rc.CreateRoom)
			admin.PUT("/rooms/:id", rc.UpdateRoom)
			admin.DELETE("/rooms/:id", rc.DeleteRoom)
			admin.POST("/rooms/:id/blocked-dates", ac.BlockDates)
			admin.DELETE("/rooms/:id/blocked-dates", ac.UnblockDates)

			admin.GET("/menu", mc.GetAllMenuItems)
			admin.POST("/menu", mc.CreateMenuItem)
			admin.PUT("/menu/:id", mc.UpdateMenuItem)
			admin.DELETE("/menu/:id", mc.DeleteMenuItem)

			admin.GET("/reviews", rvc.GetAllReviews)
			admin.PATCH("/reviews/:id", rvc.ApproveReview)
			admin.DELETE("/reviews/:id", rvc.DeleteReview)

			admin.POST("/gallery", gc.CreateGalleryImage)
			admin.DELETE("/gallery/:id", gc.DeleteGalleryImage)

			admin.GET("/settings", sc.GetAllSettings)
			admin.PUT("/settings", sc.UpdateSettings)
		}
	}

	return r
}
