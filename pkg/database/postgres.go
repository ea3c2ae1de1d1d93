package database

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stjohns-golfday/golfday-api/internal/models"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Maps duplicate-key and not-found to gorm sentinel errors; the
		// invoice-number retry depends on gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Package{}, &models.Registration{}, &models.Player{}, &models.User{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Unique invoice numbers are enforced here, not in application code:
	// concurrent registrations may compute the same next number and the
	// loser retries.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_invoice_number
		ON registrations (invoice_number)
	`)

	seedPackages(db)

	return db
}

// seedPackages fills an empty catalog so a fresh deployment has
// something to sell. Packages are immutable; an existing catalog is
// never touched.
func seedPackages(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Package{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	defaults := []models.Package{
		{
			Name:        "Single Player",
			Description: "One player entry including golf, halfway house and prize giving.",
			Price:       decimal.NewFromFloat(1500),
		},
		{
			Name:        "Fourball",
			Description: "A team of four players including golf, halfway house and prize giving.",
			Price:       decimal.NewFromFloat(5500),
		},
		{
			Name:        "Fourball + Hole Sponsorship",
			Description: "A fourball plus branded signage on a tee box and the event programme.",
			Price:       decimal.NewFromFloat(8500),
		},
		{
			Name:        "Corporate Sponsorship",
			Description: "Headline branding across the course, a fourball and four gala dinner seats.",
			Price:       decimal.NewFromFloat(15000),
		},
	}
	if err := db.Create(&defaults).Error; err != nil {
		log.Printf("failed to seed packages: %v", err)
	}
}
