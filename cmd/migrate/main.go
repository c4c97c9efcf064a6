package main

import (
	"log"
	"os"

	"valuation-be/internal/model"
	"valuation-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running GORM migration...")

	if err := db.AutoMigrate(&model.Valuation{}); err != nil {
		log.Fatalf("Error: Migration failed: %v", err)
	}

	log.Println("Migration complete: valuations table is up to date")
}
