package screens

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gdg-garage/hotel-admin/internal/gateway"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/gdg-garage/hotel-admin/internal/notifier"
)

func TestRoomScreenCreate(t *testing.T) {
	ctx := context.Background()
	gw := &fakeRooms{nextID: 41}
	n := &recordingNotifier{}
	s := NewRoomScreen(gw, testDeps(false, &scriptedConfirmer{}, n))
	s.Activate(ctx)

	s.OpenCreate()
	if s.ModalState() != ModalCreate {
		t.Fatalf("expected open-create, got %s", s.ModalState())
	}
	if err := s.SetForm(RoomForm{Number: "101", TypeID: 1, StatusID: 1, PricePerNight: 500, Capacity: 1}); err != nil {
		t.Fatalf("SetForm: %v", err)
	}

	room, err := s.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if room.ID != 42 || room.Type != models.RoomTypeSencilla || room.Status != models.RoomStatusDisponible {
		t.Errorf("unexpected room %+v", room)
	}
	rooms := s.Rooms()
	if len(rooms) != 1 || rooms[0] != room {
		t.Errorf("expected created room appended, got %+v", rooms)
	}
	if s.ModalState() != ModalClosed {
		t.Errorf("expected modal closed after success, got %s", s.ModalState())
	}
	if n.last().Level != notifier.LevelSuccess {
		t.Errorf("expected success toast, got %+v", n.last())
	}
}

func TestRoomScreenInvalidForm(t *testing.T) {
	gw := &fakeRooms{}
	s := NewRoomScreen(gw, testDeps(true, &scriptedConfirmer{}, &recordingNotifier{}))
	s.OpenCreate()
	s.SetForm(RoomForm{Number: "12345678901", PricePerNight: 0})

	_, err := s.Submit(context.Background())
	if !errors.Is(err, ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm, got %v", err)
	}
	var fe *FormError
	errors.As(err, &fe)
	for _, field := range []string{"numero", "idTipo", "idEstado", "precioNoche", "capacidad"} {
		if fe.Fields[field] == "" {
			t.Errorf("expected message for %s, got %v", field, fe.Fields)
		}
	}
	if len(gw.calls) != 0 {
		t.Errorf("expected no request, got %v", gw.calls)
	}
	if s.ModalState() != ModalCreate {
		t.Errorf("expected modal to stay open, got %s", s.ModalState())
	}
}

func TestRoomScreenEdit(t *testing.T) {
	ctx := context.Background()
	gw := &fakeRooms{rooms: []models.Room{
		{ID: 1, Number: "101", Type: models.RoomTypeSencilla, Status: models.RoomStatusDisponible, PricePerNight: 500, Capacity: 1},
		{ID: 2, Number: "305", Type: models.RoomTypeSuite, Status: models.RoomStatusLimpieza, PricePerNight: 1800, Capacity: 4},
	}}

	t.Run("Forbidden", func(t *testing.T) {
		s := NewRoomScreen(gw, testDeps(false, &scriptedConfirmer{}, &recordingNotifier{}))
		s.Activate(ctx)
		if err := s.OpenEdit(2); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("ReverseMapping", func(t *testing.T) {
		s := NewRoomScreen(gw, testDeps(true, &scriptedConfirmer{}, &recordingNotifier{}))
		s.Activate(ctx)
		if err := s.OpenEdit(2); err != nil {
			t.Fatalf("OpenEdit: %v", err)
		}
		form := s.Form()
		if form.TypeID != 3 || form.StatusID != 3 {
			t.Errorf("expected SUITE/LIMPIEZA mapped to 3/3, got %d/%d", form.TypeID, form.StatusID)
		}
		if s.ModalTitle() != "Editando Habitación #305" {
			t.Errorf("unexpected title %q", s.ModalTitle())
		}
	})

	t.Run("ReplacesEntry", func(t *testing.T) {
		s := NewRoomScreen(gw, testDeps(true, &scriptedConfirmer{}, &recordingNotifier{}))
		s.Activate(ctx)
		s.OpenEdit(2)
		form := s.Form()
		form.StatusID = 1
		form.PricePerNight = 1950
		s.SetForm(form)

		updated, err := s.Submit(ctx)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		rooms := s.Rooms()
		if rooms[1] != updated || rooms[1].Status != models.RoomStatusDisponible {
			t.Errorf("expected entry 2 to equal the response, got %+v", rooms[1])
		}
		if rooms[0].ID != 1 || len(rooms) != 2 {
			t.Errorf("expected other entries untouched, got %+v", rooms)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		s := NewRoomScreen(gw, testDeps(true, &scriptedConfirmer{}, &recordingNotifier{}))
		s.Activate(ctx)
		if err := s.OpenEdit(99); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRoomScreenFailure(t *testing.T) {
	ctx := context.Background()
	gw := &fakeRooms{rooms: []models.Room{{ID: 1, Number: "101", Type: models.RoomTypeDoble, Status: models.RoomStatusDisponible, PricePerNight: 700, Capacity: 2}}}
	n := &recordingNotifier{}
	s := NewRoomScreen(gw, testDeps(true, &scriptedConfirmer{}, n))
	s.Activate(ctx)
	s.OpenEdit(1)

	gw.err = &gateway.APIError{Status: http.StatusConflict, ErrorBody: models.ErrorBody{Mensaje: "El número de habitación ya existe"}}
	if _, err := s.Submit(ctx); err == nil {
		t.Fatal("expected error")
	}
	if s.ModalState() != ModalEdit {
		t.Errorf("expected modal back to open-edit, got %s", s.ModalState())
	}
	if got := n.last(); got.Level != notifier.LevelError || got.Text != "El número de habitación ya existe" {
		t.Errorf("unexpected toast %+v", got)
	}
	if s.Rooms()[0].PricePerNight != 700 {
		t.Errorf("expected list untouched")
	}
}

func TestRoomScreenDelete(t *testing.T) {
	ctx := context.Background()
	seed := []models.Room{
		{ID: 1, Number: "101", Type: models.RoomTypeSencilla, Status: models.RoomStatusDisponible, PricePerNight: 500, Capacity: 1},
		{ID: 2, Number: "102", Type: models.RoomTypeKing, Status: models.RoomStatusMantenimiento, PricePerNight: 2500, Capacity: 2},
	}

	t.Run("Declined", func(t *testing.T) {
		gw := &fakeRooms{rooms: seed}
		confirmer := &scriptedConfirmer{answers: []bool{false}}
		s := NewRoomScreen(gw, testDeps(true, confirmer, &recordingNotifier{}))
		s.Activate(ctx)

		deleted, err := s.Delete(ctx, 2)
		if err != nil || deleted {
			t.Fatalf("expected no delete, got %v %v", deleted, err)
		}
		if len(confirmer.prompts) != 1 {
			t.Errorf("expected one prompt, got %d", len(confirmer.prompts))
		}
		if len(s.Rooms()) != 2 || len(gw.calls) != 1 {
			t.Errorf("expected no request and list unchanged, calls %v", gw.calls)
		}
	})

	t.Run("Confirmed", func(t *testing.T) {
		gw := &fakeRooms{rooms: seed}
		s := NewRoomScreen(gw, testDeps(true, &scriptedConfirmer{answers: []bool{true}}, &recordingNotifier{}))
		s.Activate(ctx)

		deleted, err := s.Delete(ctx, 2)
		if err != nil || !deleted {
			t.Fatalf("expected delete, got %v %v", deleted, err)
		}
		rooms := s.Rooms()
		if len(rooms) != 1 || rooms[0].ID != 1 {
			t.Errorf("expected room 2 removed, got %+v", rooms)
		}

		var buf bytes.Buffer
		s.Render(&buf)
		if strings.Contains(buf.String(), "102") || !strings.Contains(buf.String(), "Sencilla") {
			t.Errorf("unexpected table:\n%s", buf.String())
		}
		if !strings.Contains(buf.String(), "ACCIONES") {
			t.Errorf("expected actions column for admin:\n%s", buf.String())
		}
	})

	t.Run("Forbidden", func(t *testing.T) {
		gw := &fakeRooms{rooms: seed}
		s := NewRoomScreen(gw, testDeps(false, &scriptedConfirmer{answers: []bool{true}}, &recordingNotifier{}))
		if _, err := s.Delete(ctx, 1); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if len(gw.calls) != 0 {
			t.Errorf("expected no request, got %v", gw.calls)
		}
	})
}

func TestRoomScreenReloadFailure(t *testing.T) {
	gw := &fakeRooms{err: errors.New("connection refused")}
	s := NewRoomScreen(gw, testDeps(false, &scriptedConfirmer{}, &recordingNotifier{}))
	s.Activate(context.Background())
	if len(s.Rooms()) != 0 {
		t.Errorf("expected empty list")
	}
	if err := s.Reload(context.Background()); err == nil {
		t.Error("expected Reload to return the failure")
	}
}
