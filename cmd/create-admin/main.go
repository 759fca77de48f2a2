package main

import (
	"errors"  // Error matching
	"strings" // Email normalization

	"github.com/MaxRonzhin/writer-site-with-mysql/internal/config" // Custom import path (Config)
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/db"     // Custom import path (Database)
	"github.com/MaxRonzhin/writer-site-with-mysql/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Out-of-band admin provisioning: upserts the user named by
// ADMIN_EMAIL/ADMIN_NAME/ADMIN_PASSWORD and forces role admin.
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Both credentials are required to provision an admin
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logrus.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	gdb, err := db.Open(cfg.DSN()) // Connect to the database
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Hash the bootstrap password
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash password: %v", err)
	}

	email := strings.ToLower(cfg.AdminEmail) // Normalize email to lowercase

	var user domain.User // Existing user lookup by email
	err = gdb.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		// Existing user: refresh name and password, promote to admin
		values := map[string]any{"name": cfg.AdminName, "password_hash": string(hash), "role": "admin"}
		if err := gdb.Model(&user).Updates(values).Error; err != nil {
			logrus.Fatalf("failed to update admin: %v", err)
		}
		logrus.WithField("email", email).Info("Admin updated")
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No user yet: create with role admin
		user = domain.User{Email: email, Name: cfg.AdminName, PasswordHash: string(hash), Role: "admin"}
		if err := gdb.Create(&user).Error; err != nil {
			logrus.Fatalf("failed to create admin: %v", err)
		}
		logrus.WithField("email", email).Info("Admin created")
	default:
		logrus.Fatalf("failed to look up admin: %v", err)
	}
}
