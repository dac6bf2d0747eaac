package db

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blogicum/internal/models"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=blogicum port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedCategories()
	seedLocations()
}

// Categories and locations are managed out of band; seed a starter set so a
// fresh instance can accept posts right away.
func seedCategories() {
	var count int64
	DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Title: "Travel", Slug: "travel", Description: "Trips, routes and places worth writing home about", Published: true},
		{Title: "Food", Slug: "food", Description: "Recipes, restaurants and everything edible", Published: true},
		{Title: "Tech", Slug: "tech", Description: "Software, hardware and the people behind them", Published: true},
		{Title: "Daily life", Slug: "daily", Description: "Everything that does not fit anywhere else", Published: true},
	}

	for _, category := range categories {
		if err := DB.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Slug, err)
		}
	}
	log.Println("Initial categories created")
}

func seedLocations() {
	var count int64
	DB.Model(&models.Location{}).Count(&count)
	if count > 0 {
		return
	}

	locations := []models.Location{
		{Name: "At home", Published: true},
		{Name: "On the road", Published: true},
	}

	for _, location := range locations {
		if err := DB.Create(&location).Error; err != nil {
			log.Printf("Failed to create location %s: %v", location.Name, err)
		}
	}
	log.Println("Initial locations created")
}
