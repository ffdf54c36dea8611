package screens

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gdg-garage/hotel-admin/internal/gateway"
	"github.com/gdg-garage/hotel-admin/internal/models"
)

var day0 = models.DateOf(testToday)

func reservationOn(id uint, checkIn, checkOut models.Date, status string) models.Reservation {
	return models.Reservation{
		ID:       id,
		Guest:    models.Guest{ID: 1, GuestFields: models.GuestFields{Name: "Ana", FirstSurname: "García", SecondSurname: "Ruiz"}},
		Room:     models.Room{ID: 1, Number: "201"},
		CheckIn:  checkIn.String(),
		CheckOut: checkOut.String(),
		Nights:   checkIn.DaysUntil(checkOut),
		Status:   status,
	}
}

func newReservationScreen(gw *fakeReservations, admin bool, confirmer *scriptedConfirmer, n *recordingNotifier) *ReservationScreen {
	rooms := &fakeRooms{rooms: []models.Room{{ID: 1, Number: "201"}}}
	guests := &fakeGuests{guests: []models.Guest{{ID: 1}}}
	s := NewReservationScreen(gw, rooms, guests, testDeps(admin, confirmer, n))
	s.Activate(context.Background())
	return s
}

func TestReservationDateGuard(t *testing.T) {
	s := newReservationScreen(&fakeReservations{}, false, &scriptedConfirmer{}, &recordingNotifier{})

	if err := s.SetCheckIn(day0); !errors.Is(err, ErrModalClosed) {
		t.Fatalf("expected ErrModalClosed before opening, got %v", err)
	}
	s.OpenCreate()

	t.Run("CheckInBeforeToday", func(t *testing.T) {
		if err := s.SetCheckIn(day0.AddDays(-1)); !errors.Is(err, ErrInvalidForm) {
			t.Errorf("expected ErrInvalidForm, got %v", err)
		}
		if !s.Form().CheckIn.IsZero() {
			t.Errorf("expected check-in to stay empty")
		}
	})

	t.Run("CheckOutBeforeCheckIn", func(t *testing.T) {
		s.SetCheckIn(day0.AddDays(3))
		if err := s.SetCheckOut(day0.AddDays(2)); !errors.Is(err, ErrInvalidForm) {
			t.Errorf("expected ErrInvalidForm, got %v", err)
		}
		if !s.Form().CheckOut.IsZero() {
			t.Errorf("expected check-out rejected")
		}
		if err := s.SetCheckOut(day0.AddDays(3)); err != nil {
			t.Errorf("check-out equal to check-in should pass the guard, got %v", err)
		}
	})

	t.Run("MovingCheckInClearsCheckOut", func(t *testing.T) {
		s.SetCheckIn(day0)
		s.SetCheckOut(day0.AddDays(2))
		if err := s.SetCheckIn(day0.AddDays(5)); err != nil {
			t.Fatalf("SetCheckIn: %v", err)
		}
		if !s.Form().CheckOut.IsZero() {
			t.Errorf("expected check-out cleared, got %s", s.Form().CheckOut)
		}
		if !s.MinCheckOut().Equal(day0.AddDays(5)) {
			t.Errorf("expected min check-out to follow check-in")
		}
	})

	t.Run("KeepsValidCheckOut", func(t *testing.T) {
		s.SetCheckIn(day0)
		s.SetCheckOut(day0.AddDays(4))
		s.SetCheckIn(day0.AddDays(1))
		if !s.Form().CheckOut.Equal(day0.AddDays(4)) {
			t.Errorf("expected check-out kept, got %s", s.Form().CheckOut)
		}
	})
}

func TestReservationCreate(t *testing.T) {
	ctx := context.Background()
	gw := &fakeReservations{}
	s := newReservationScreen(gw, false, &scriptedConfirmer{}, &recordingNotifier{})

	if len(s.RoomOptions()) != 1 || len(s.GuestOptions()) != 1 {
		t.Fatalf("expected pickers loaded on activation")
	}

	t.Run("MissingFields", func(t *testing.T) {
		s.OpenCreate()
		_, err := s.Submit(ctx)
		var fe *FormError
		if !errors.As(err, &fe) {
			t.Fatalf("expected *FormError, got %v", err)
		}
		for _, field := range []string{"idHuesped", "idHabitacion", "fechaEntrada", "fechaSalida"} {
			if fe.Fields[field] == "" {
				t.Errorf("expected error on %s, got %v", field, fe.Fields)
			}
		}
	})

	t.Run("HandoffPreselectsGuest", func(t *testing.T) {
		s.OpenCreateFor(1)
		if s.Form().GuestID != 1 {
			t.Fatalf("expected guest preselected")
		}
		s.SetRoom(1)
		s.SetCheckIn(day0.AddDays(1))
		s.SetCheckOut(day0.AddDays(3))

		r, err := s.Submit(ctx)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if r.CheckIn != day0.AddDays(1).String() || r.Guest.ID != 1 {
			t.Errorf("unexpected reservation %+v", r)
		}
		if len(s.Reservations()) != 1 || s.ModalState() != ModalClosed {
			t.Errorf("expected appended and closed")
		}
	})
}

func TestReservationLateCheckIn(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		checkIn    models.Date
		wantPrompt bool
	}{
		{"Past", day0.AddDays(-1), true},
		{"Today", day0, false},
		{"Future", day0.AddDays(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeReservations{reservations: []models.Reservation{
				reservationOn(7, tt.checkIn, tt.checkIn.AddDays(2), models.ReservationConfirmada),
			}}
			confirmer := &scriptedConfirmer{answers: []bool{true}}
			s := newReservationScreen(gw, false, confirmer, &recordingNotifier{})

			ok, err := s.CheckIn(ctx, 7)
			if err != nil || !ok {
				t.Fatalf("CheckIn: %v %v", ok, err)
			}
			if prompted := len(confirmer.prompts) == 1; prompted != tt.wantPrompt {
				t.Errorf("prompted = %v, want %v", prompted, tt.wantPrompt)
			}
			if s.Reservations()[0].Status != models.ReservationEnCurso {
				t.Errorf("expected entry replaced with EN_CURSO")
			}
		})
	}

	t.Run("DeclinedLate", func(t *testing.T) {
		gw := &fakeReservations{reservations: []models.Reservation{
			reservationOn(7, day0.AddDays(-2), day0.AddDays(1), models.ReservationConfirmada),
		}}
		s := newReservationScreen(gw, false, &scriptedConfirmer{answers: []bool{false}}, &recordingNotifier{})
		ok, err := s.CheckIn(ctx, 7)
		if err != nil || ok {
			t.Fatalf("expected no check-in, got %v %v", ok, err)
		}
		for _, c := range gw.calls {
			if c == "check-in" {
				t.Error("expected no request")
			}
		}
	})
}

func TestReservationLateCheckOut(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		checkOut   models.Date
		wantPrompt bool
	}{
		{"Past", day0.AddDays(-1), true},
		{"Today", day0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeReservations{reservations: []models.Reservation{
				reservationOn(3, tt.checkOut.AddDays(-3), tt.checkOut, models.ReservationEnCurso),
			}}
			confirmer := &scriptedConfirmer{answers: []bool{true}}
			s := newReservationScreen(gw, false, confirmer, &recordingNotifier{})

			if _, err := s.CheckOut(ctx, 3); err != nil {
				t.Fatalf("CheckOut: %v", err)
			}
			if prompted := len(confirmer.prompts) == 1; prompted != tt.wantPrompt {
				t.Errorf("prompted = %v, want %v", prompted, tt.wantPrompt)
			}
			if s.Reservations()[0].Status != models.ReservationFinalizada {
				t.Errorf("expected FINALIZADA")
			}
		})
	}
}

func TestReservationLocalDay(t *testing.T) {
	// Late in the evening the check-in day is still today.
	zone := time.FixedZone("CST", -6*60*60)
	evening := time.Date(2026, time.March, 10, 23, 30, 0, 0, zone)
	gw := &fakeReservations{reservations: []models.Reservation{
		reservationOn(1, models.NewDate(2026, time.March, 10), models.NewDate(2026, time.March, 12), models.ReservationConfirmada),
	}}
	confirmer := &scriptedConfirmer{answers: []bool{true}}
	deps := testDeps(false, confirmer, &recordingNotifier{})
	deps.Now = func() time.Time { return evening }
	s := NewReservationScreen(gw, &fakeRooms{}, &fakeGuests{}, deps)
	s.Activate(context.Background())

	s.CheckIn(context.Background(), 1)
	if len(confirmer.prompts) != 0 {
		t.Errorf("expected no late prompt on the check-in day")
	}
}

func TestReservationCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Declined", func(t *testing.T) {
		gw := &fakeReservations{reservations: []models.Reservation{
			reservationOn(7, day0.AddDays(1), day0.AddDays(3), models.ReservationConfirmada),
		}}
		s := newReservationScreen(gw, false, &scriptedConfirmer{answers: []bool{false}}, &recordingNotifier{})
		before := s.Reservations()

		ok, err := s.Cancel(ctx, 7)
		if err != nil || ok {
			t.Fatalf("expected nothing to happen, got %v %v", ok, err)
		}
		if len(gw.calls) != 1 {
			t.Errorf("expected only the activation list call, got %v", gw.calls)
		}
		if after := s.Reservations(); after[0] != before[0] {
			t.Errorf("expected list unchanged")
		}
	})

	t.Run("Confirmed", func(t *testing.T) {
		gw := &fakeReservations{reservations: []models.Reservation{
			reservationOn(7, day0.AddDays(1), day0.AddDays(3), models.ReservationConfirmada),
		}}
		n := &recordingNotifier{}
		s := newReservationScreen(gw, false, &scriptedConfirmer{answers: []bool{true}}, n)

		if ok, err := s.Cancel(ctx, 7); err != nil || !ok {
			t.Fatalf("Cancel: %v %v", ok, err)
		}
		if s.Reservations()[0].Status != models.ReservationCancelada {
			t.Errorf("expected CANCELADA")
		}
		if n.last().Title != "Cancelada" {
			t.Errorf("unexpected toast %+v", n.last())
		}
	})
}

func TestReservationFailureMessage(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"Details",
			&gateway.APIError{Status: http.StatusUnprocessableEntity, ErrorBody: models.ErrorBody{
				Mensaje:  "Datos inválidos",
				Detalles: map[string]string{"fechaSalida": "posterior", "fechaEntrada": "inválida"},
			}},
			"inválida\nposterior",
		},
		{
			"Mensaje",
			&gateway.APIError{Status: http.StatusConflict, ErrorBody: models.ErrorBody{Mensaje: "Ya está en curso", Message: "conflict"}},
			"Ya está en curso",
		},
		{
			"Message",
			&gateway.APIError{Status: http.StatusBadRequest, ErrorBody: models.ErrorBody{Message: "Bad Request"}},
			"Bad Request",
		},
		{
			"Fallback",
			errors.Join(gateway.ErrTransport, errors.New("connection reset")),
			"Error en Check-in",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeReservations{reservations: []models.Reservation{
				reservationOn(5, day0, day0.AddDays(1), models.ReservationConfirmada),
			}}
			n := &recordingNotifier{}
			s := newReservationScreen(gw, false, &scriptedConfirmer{}, n)
			gw.err = tt.err

			ok, err := s.CheckIn(ctx, 5)
			if ok || !errors.Is(err, tt.err) {
				t.Fatalf("expected wrapped failure, got %v %v", ok, err)
			}
			if got := n.last().Text; got != tt.want {
				t.Errorf("toast text = %q, want %q", got, tt.want)
			}
			if s.Reservations()[0].Status != models.ReservationConfirmada {
				t.Errorf("expected list untouched")
			}
		})
	}
}

func TestReservationDelete(t *testing.T) {
	ctx := context.Background()
	seed := []models.Reservation{
		reservationOn(1, day0, day0.AddDays(1), models.ReservationFinalizada),
		reservationOn(2, day0, day0.AddDays(2), models.ReservationConfirmada),
	}

	t.Run("Forbidden", func(t *testing.T) {
		gw := &fakeReservations{reservations: seed}
		s := newReservationScreen(gw, false, &scriptedConfirmer{answers: []bool{true}}, &recordingNotifier{})
		if _, err := s.Delete(ctx, 1); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("Admin", func(t *testing.T) {
		gw := &fakeReservations{reservations: seed}
		s := newReservationScreen(gw, true, &scriptedConfirmer{answers: []bool{true}}, &recordingNotifier{})
		if ok, err := s.Delete(ctx, 1); err != nil || !ok {
			t.Fatalf("Delete: %v %v", ok, err)
		}
		if list := s.Reservations(); len(list) != 1 || list[0].ID != 2 {
			t.Errorf("expected reservation 1 removed, got %+v", list)
		}

		var buf bytes.Buffer
		s.Render(&buf)
		out := buf.String()
		if !strings.Contains(out, "Confirmada") || !strings.Contains(out, "check-in, cancelar, eliminar") {
			t.Errorf("unexpected table:\n%s", out)
		}
	})
}
