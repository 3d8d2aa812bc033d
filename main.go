package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-site-backend/config"
	"hotel-site-backend/controllers"
	"hotel-site-backend/models"
	"hotel-site-backend/repository"
	"hotel-site-backend/routes"
	"hotel-site-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Stores
	roomTypeRepo := repository.NewRoomTypeRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	blockedRepo := repository.NewBlockedDateRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	// Services
	settingsService := services.NewSettingsService(settingRepo, services.DefaultSettingsTTL)
	availabilityService := services.NewAvailabilityService(roomTypeRepo, bookingRepo, blockedRepo)
	bookingValidator := services.NewBookingValidator(availabilityService, settingsService)
	bookingService := services.NewBookingService(db, bookingValidator)
	roomTypeService := services.NewRoomTypeService(db)
	menuService := services.NewMenuService(db)
	reviewService := services.NewReviewService(db)
	galleryService := services.NewGalleryService(db)
	adminService := services.NewAdminService(db)

	// Controllers
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	bookingController := controllers.NewBookingController(bookingService, bookingValidator)
	roomController := controllers.NewRoomController(roomTypeService)
	menuController := controllers.NewMenuController(menuService)
	reviewController := controllers.NewReviewController(reviewService)
	galleryController := controllers.NewGalleryController(galleryService)
	settingsController := controllers.NewSettingsController(settingRepo, settingsService)
	authController := controllers.NewAuthController(adminService)

	router := routes.SetupRouter(
		availabilityController,
		bookingController,
		roomController,
		menuController,
		reviewController,
		galleryController,
		settingsController,
		authController,
	)

	// Expire stale tentative bookings in the background; the hold length is
	// the booking_buffer_minutes setting.
	stopExpiry := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				holdMinutes := settingsService.GetInt(models.SettingBookingBufferMinutes, 30)
				expired, err := bookingService.ExpireTentativeBookings(time.Duration(holdMinutes) * time.Minute)
				if err != nil {
					log.Printf("warning: tentative booking expiry failed: %v", err)
				} else if expired > 0 {
					log.Printf("Expired %d stale tentative booking(s)", expired)
				}
			case <-stopExpiry:
				return
			}
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")
	close(stopExpiry)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
