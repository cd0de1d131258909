package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rentwheels/internal/models"
)

// InitDB opens the postgres connection from environment variables and runs
// migrations. The handle is returned to the caller and injected into every
// component; nothing holds it as a package global.
func InitDB() *gorm.DB {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "rentwheels")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	return db
}

// Migrate creates the three relations plus the lookup indexes the booking
// guards rely on. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Vehicle{}, &models.Booking{}); err != nil {
		return err
	}

	if err := db.Exec(`
	  CREATE INDEX IF NOT EXISTS idx_bookings_vehicle_status
	  ON bookings (vehicle_id, status)
	`).Error; err != nil {
		return err
	}
	return db.Exec(`
	  CREATE INDEX IF NOT EXISTS idx_bookings_customer_status
	  ON bookings (customer_id, status)
	`).Error
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
