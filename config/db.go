package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-site-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_site")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.SiteSetting{},
		&models.RoomType{},
		&models.Booking{},
		&models.BlockedDate{},
		&models.MenuItem{},
		&models.Review{},
		&models.GalleryImage{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase inserts the rows a fresh install needs: a default admin,
// booking policy settings, room types and a starter menu. Existing rows are
// never overwritten.
func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName: "Admin User",
				Username: "admin@hotel.local",
				Password: string(hash),
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Settings ----------------
	defaultSettings := map[string]string{
		models.SettingMaxAdvanceBookingDays: "30",
		models.SettingBookingBufferMinutes:  "30",
		"hotel_name":                        "Hillside Hotel",
		"hotel_phone":                       "",
		"hotel_email":                       "",
		"hotel_address":                     "",
	}
	for key, value := range defaultSettings {
		var count int64
		DB.Model(&models.SiteSetting{}).Where("setting_key = ?", key).Count(&count)
		if count == 0 {
			if err := DB.Create(&models.SiteSetting{SettingKey: key, SettingValue: value}).Error; err != nil {
				log.Printf("warning: failed to seed setting %s: %v", key, err)
			}
		}
	}

	// ---------------- RoomTypes ----------------
	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Standard", Description: "Standard Room", MaxGuests: 2, TotalRooms: 10, RoomsAvailable: 10, PricePerNight: 1200, IsActive: true},
			{TypeName: "Superior", Description: "Superior Room", MaxGuests: 3, TotalRooms: 6, RoomsAvailable: 6, PricePerNight: 1800, IsActive: true},
			{TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4, TotalRooms: 4, RoomsAvailable: 4, PricePerNight: 2500, IsActive: true},
			{TypeName: "Family Suite", Description: "Connecting Family Suite", MaxGuests: 5, TotalRooms: 2, RoomsAvailable: 2, PricePerNight: 3600, IsActive: true},
		}
		DB.Create(&roomTypes)
		log.Println("RoomTypes seeded")
	}

	// ---------------- Menu ----------------
	var menuCount int64
	DB.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		items := []models.MenuItem{
			{Name: "Continental Breakfast", Category: "Breakfast", Price: 220, IsAvailable: true, SortOrder: 1},
			{Name: "Pad Thai", Category: "Mains", Price: 180, IsAvailable: true, SortOrder: 1},
			{Name: "Green Curry", Category: "Mains", Price: 210, IsAvailable: true, SortOrder: 2},
			{Name: "Mango Sticky Rice", Category: "Desserts", Price: 120, IsAvailable: true, SortOrder: 1},
		}
		DB.Create(&items)
		log.Println("Menu seeded")
	}
}
