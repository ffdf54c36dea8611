package database

import (
	"time"

	"github.com/gdg-garage/hotel-admin/internal/models"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model
	Number        string `gorm:"uniqueIndex;size:10"`
	Type          string
	Status        string
	PricePerNight float64
	Capacity      int
}

func (r Room) Record() models.Room {
	return models.Room{
		ID:            r.ID,
		Number:        r.Number,
		Type:          r.Type,
		Status:        r.Status,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
	}
}

type Guest struct {
	gorm.Model
	models.GuestFields `gorm:"embedded"`
}

func (g Guest) Record() models.Guest {
	return models.Guest{ID: g.ID, GuestFields: g.GuestFields}
}

type Reservation struct {
	gorm.Model
	GuestID  uint `gorm:"index"`
	Guest    Guest
	RoomID   uint `gorm:"index"`
	Room     Room
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Total    float64
	Status   string `gorm:"index"`
}

// Record expects Guest and Room to be preloaded.
func (r Reservation) Record() models.Reservation {
	return models.Reservation{
		ID:       r.ID,
		Guest:    r.Guest.Record(),
		Room:     r.Room.Record(),
		CheckIn:  r.CheckIn.Format(models.DateLayout),
		CheckOut: r.CheckOut.Format(models.DateLayout),
		Nights:   r.Nights,
		Total:    r.Total,
		Status:   r.Status,
	}
}

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:20"`
	PasswordHash string
	Roles        []string `gorm:"serializer:json"`
}

func (u User) Record() models.User {
	return models.User{ID: u.ID, Username: u.Username, Roles: u.Roles}
}
