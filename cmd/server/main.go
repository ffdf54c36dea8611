package main

import (
	"fmt"
	"net/http"

	"github.com/gdg-garage/hotel-admin/internal/auth"
	"github.com/gdg-garage/hotel-admin/internal/config"
	"github.com/gdg-garage/hotel-admin/internal/database"
	"github.com/gdg-garage/hotel-admin/internal/handlers"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Connect to Database
	db := database.Connect(cfg)

	// Seed the first administrator
	if cfg.AdminPassword != "" {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		created, err := database.SeedAdmin(db, cfg.AdminUsername, hash)
		if err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		if created {
			log.WithField("username", cfg.AdminUsername).Info("Admin user created")
		}
	} else {
		log.Warn("ADMIN_PASSWORD not set, no admin user seeded")
	}

	authHandler := auth.NewAuthHandler(cfg, db)
	r := handlers.NewRouter(db, authHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
