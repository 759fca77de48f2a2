package db

import (
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// SingletonID is the fixed identity of the cover, about and footer rows
const SingletonID = 1

// Open connects to MySQL with duplicate-key error translation enabled
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate performs automatic migration and seeds the singleton rows
func Migrate(dsn string) {
	gdb, err := Open(dsn) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing constraints, columns and indexes
	err = gdb.AutoMigrate(
		&domain.User{},
		&domain.Cover{},
		&domain.About{},
		&domain.Achievement{},
		&domain.Book{},
		&domain.Review{},
		&domain.Footer{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Seed the singleton rows so the service only ever updates them
	if err := Seed(gdb); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// Seed inserts the cover, about and footer singleton rows if missing
func Seed(gdb *gorm.DB) error {
	var cover domain.Cover
	// Placeholder content; the admin panel replaces it via update
	if err := gdb.Where(domain.Cover{ID: SingletonID}).Attrs(domain.Cover{
		AuthorName:  "Author Name",
		Subtitle:    "Writer",
		Description: "About the author.",
		StatBooks:   "0",
		StatReaders: "0",
		StatRating:  "0",
	}).FirstOrCreate(&cover).Error; err != nil {
		return err
	}
	var about domain.About
	if err := gdb.Where(domain.About{ID: SingletonID}).Attrs(domain.About{
		Title:      "About",
		Paragraph1: "...",
		Paragraph2: "...",
		Paragraph3: "...",
	}).FirstOrCreate(&about).Error; err != nil {
		return err
	}
	var footer domain.Footer
	return gdb.Where(domain.Footer{ID: SingletonID}).Attrs(domain.Footer{
		ContactEmail:  "author@example.com",
		ContactPhone:  "+0 000 000-00-00",
		VkLabel:       "VK",
		VkURL:         "https://vk.com",
		TgLabel:       "Telegram",
		TgURL:         "https://t.me",
		IgLabel:       "Instagram",
		IgURL:         "https://instagram.com",
		CopyrightText: "© Author Name",
	}).FirstOrCreate(&footer).Error
}
