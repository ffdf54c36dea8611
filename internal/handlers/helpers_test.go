package handlers

import (
	"errors"
	"testing"

	"github.com/gdg-garage/hotel-admin/internal/database"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price float64) database.Room {
	t.Helper()
	room := database.Room{
		Number:        number,
		Type:          models.RoomTypeDoble,
		Status:        models.RoomStatusDisponible,
		PricePerNight: price,
		Capacity:      2,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return room
}

func seedGuest(t *testing.T, db *gorm.DB, name string) database.Guest {
	t.Helper()
	guest := database.Guest{GuestFields: models.GuestFields{
		Name:          name,
		FirstSurname:  "Pérez",
		SecondSurname: "López",
		Email:         "huesped@example.com",
		Phone:         "5512345678",
		DocumentType:  models.DocumentINE,
		Nationality:   "MEXICO",
	}}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("failed to create guest: %v", err)
	}
	return guest
}

func expectStatus(t *testing.T, err error, status int) *APIError {
	t.Helper()
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError with status %d, got %v", status, err)
	}
	if apiErr.Status != status {
		t.Fatalf("expected status %d, got %d (%s)", status, apiErr.Status, apiErr.Mensaje)
	}
	return apiErr
}
