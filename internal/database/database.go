package database

import (
	"errors"
	"fmt"

	"github.com/gdg-garage/hotel-admin/internal/config"
	"github.com/gdg-garage/hotel-admin/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the SQLite database at path and migrates the schema.
// ":memory:" gives a private in-memory database.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared across requests.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Room{}, &Guest{}, &Reservation{}, &User{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return db, nil
}

func Connect(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return db
}

// SeedAdmin creates the admin account when no user with that name exists.
// passwordHash must already be hashed.
func SeedAdmin(db *gorm.DB, username, passwordHash string) (bool, error) {
	var user User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	user = User{
		Username:     username,
		PasswordHash: passwordHash,
		Roles:        []string{models.RoleAdmin, models.RoleUser},
	}
	if err := db.Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}
