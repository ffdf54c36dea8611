package screens

import (
	"context"
	"sync"
	"time"

	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/gdg-garage/hotel-admin/internal/notifier"
)

var testToday = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)

func fixedNow() time.Time { return testToday }

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []notifier.Toast
}

func (n *recordingNotifier) Notify(_ context.Context, t notifier.Toast) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, t)
	return nil
}

func (n *recordingNotifier) last() notifier.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.toasts) == 0 {
		return notifier.Toast{}
	}
	return n.toasts[len(n.toasts)-1]
}

// scriptedConfirmer answers prompts in order; it says no once the script
// runs out.
type scriptedConfirmer struct {
	answers []bool
	prompts []Prompt
}

func (c *scriptedConfirmer) Confirm(_ context.Context, p Prompt) (bool, error) {
	c.prompts = append(c.prompts, p)
	if len(c.answers) == 0 {
		return false, nil
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func testDeps(admin bool, confirmer *scriptedConfirmer, n *recordingNotifier) Deps {
	return Deps{
		Notifier:  n,
		Confirmer: confirmer,
		Caps:      Capabilities{Admin: admin},
		Now:       fixedNow,
	}
}

type fakeRooms struct {
	rooms  []models.Room
	nextID uint
	err    error
	calls  []string
}

func (f *fakeRooms) List(context.Context) ([]models.Room, error) {
	f.calls = append(f.calls, "list")
	return append([]models.Room(nil), f.rooms...), f.err
}

func (f *fakeRooms) Create(_ context.Context, req models.RoomRequest) (models.Room, error) {
	f.calls = append(f.calls, "create")
	if f.err != nil {
		return models.Room{}, f.err
	}
	f.nextID++
	room := roomFromRequest(f.nextID, req)
	f.rooms = append(f.rooms, room)
	return room, nil
}

func (f *fakeRooms) Update(_ context.Context, id uint, req models.RoomRequest) (models.Room, error) {
	f.calls = append(f.calls, "update")
	if f.err != nil {
		return models.Room{}, f.err
	}
	return roomFromRequest(id, req), nil
}

func (f *fakeRooms) Delete(context.Context, uint) error {
	f.calls = append(f.calls, "delete")
	return f.err
}

func roomFromRequest(id uint, req models.RoomRequest) models.Room {
	typ, _ := models.RoomTypes.Name(req.TypeID)
	status, _ := models.RoomStatuses.Name(req.StatusID)
	return models.Room{
		ID:            id,
		Number:        req.Number,
		Type:          typ,
		Status:        status,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
	}
}

type fakeGuests struct {
	guests []models.Guest
	nextID uint
	err    error
	calls  []string
}

func (f *fakeGuests) List(context.Context) ([]models.Guest, error) {
	f.calls = append(f.calls, "list")
	return append([]models.Guest(nil), f.guests...), f.err
}

func (f *fakeGuests) Create(_ context.Context, req models.GuestFields) (models.Guest, error) {
	f.calls = append(f.calls, "create")
	if f.err != nil {
		return models.Guest{}, f.err
	}
	f.nextID++
	return models.Guest{ID: f.nextID, GuestFields: req}, nil
}

func (f *fakeGuests) Update(_ context.Context, id uint, req models.GuestFields) (models.Guest, error) {
	f.calls = append(f.calls, "update")
	if f.err != nil {
		return models.Guest{}, f.err
	}
	return models.Guest{ID: id, GuestFields: req}, nil
}

func (f *fakeGuests) Delete(context.Context, uint) error {
	f.calls = append(f.calls, "delete")
	return f.err
}

type fakeReservations struct {
	reservations []models.Reservation
	err          error
	calls        []string
}

func (f *fakeReservations) List(context.Context) ([]models.Reservation, error) {
	f.calls = append(f.calls, "list")
	return append([]models.Reservation(nil), f.reservations...), f.err
}

func (f *fakeReservations) Create(_ context.Context, req models.ReservationRequest) (models.Reservation, error) {
	f.calls = append(f.calls, "create")
	if f.err != nil {
		return models.Reservation{}, f.err
	}
	r := models.Reservation{
		ID:       uint(len(f.reservations) + 1),
		Guest:    models.Guest{ID: req.GuestID},
		Room:     models.Room{ID: req.RoomID},
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Status:   models.ReservationConfirmada,
	}
	f.reservations = append(f.reservations, r)
	return r, nil
}

func (f *fakeReservations) Delete(context.Context, uint) error {
	f.calls = append(f.calls, "delete")
	return f.err
}

func (f *fakeReservations) CheckIn(_ context.Context, id uint) (models.Reservation, error) {
	return f.move("check-in", id, models.ReservationEnCurso)
}

func (f *fakeReservations) CheckOut(_ context.Context, id uint) (models.Reservation, error) {
	return f.move("check-out", id, models.ReservationFinalizada)
}

func (f *fakeReservations) Cancel(_ context.Context, id uint) (models.Reservation, error) {
	return f.move("cancel", id, models.ReservationCancelada)
}

func (f *fakeReservations) move(call string, id uint, status string) (models.Reservation, error) {
	f.calls = append(f.calls, call)
	if f.err != nil {
		return models.Reservation{}, f.err
	}
	for i := range f.reservations {
		if f.reservations[i].ID == id {
			f.reservations[i].Status = status
			return f.reservations[i], nil
		}
	}
	return models.Reservation{}, f.err
}

type fakeUsers struct {
	users []models.User
	err   error
	calls []string
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	f.calls = append(f.calls, "list")
	return append([]models.User(nil), f.users...), f.err
}

func (f *fakeUsers) Create(_ context.Context, req models.UserRequest) (models.User, error) {
	f.calls = append(f.calls, "create")
	if f.err != nil {
		return models.User{}, f.err
	}
	u := models.User{ID: uint(len(f.users) + 1), Username: req.Username, Roles: req.Roles}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUsers) Delete(_ context.Context, username string) error {
	f.calls = append(f.calls, "delete:"+username)
	return f.err
}
