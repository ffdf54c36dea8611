package screens

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

type RoomGateway interface {
	List(ctx context.Context) ([]models.Room, error)
	Create(ctx context.Context, req models.RoomRequest) (models.Room, error)
	Update(ctx context.Context, id uint, req models.RoomRequest) (models.Room, error)
	Delete(ctx context.Context, id uint) error
}

// RoomScreen is the habitaciones catalog. Anyone signed in may create a
// room; edit and delete need the admin capability.
type RoomScreen struct {
	gw   RoomGateway
	deps Deps

	mu    sync.Mutex
	rooms []models.Room
	modal Modal
	form  RoomForm
	title string
}

func NewRoomScreen(gw RoomGateway, deps Deps) *RoomScreen {
	return &RoomScreen{gw: gw, deps: deps.forScreen("habitaciones")}
}

// Activate loads the list. Failures are only logged.
func (s *RoomScreen) Activate(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.deps.Log.WithError(err).Error("Error al obtener habitaciones")
	}
}

func (s *RoomScreen) Reload(ctx context.Context) error {
	rooms, err := s.gw.List(ctx)
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}
	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()
	return nil
}

func (s *RoomScreen) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Room(nil), s.rooms...)
}

func (s *RoomScreen) Capabilities() Capabilities { return s.deps.Caps }

func (s *RoomScreen) ModalState() ModalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal.State()
}

func (s *RoomScreen) ModalTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

func (s *RoomScreen) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.OpenCreate()
	s.form = RoomForm{}
	s.title = "Registrar Habitación"
}

func (s *RoomScreen) OpenEdit(id uint) error {
	if err := s.deps.requireAdmin(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := findByID(s.rooms, id, roomID)
	if !ok {
		return fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	s.modal.OpenEdit(id)
	s.form = RoomFormFrom(room)
	s.title = fmt.Sprintf("Editando Habitación #%s", room.Number)
	return nil
}

func (s *RoomScreen) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.form = RoomForm{}
}

func (s *RoomScreen) Form() RoomForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *RoomScreen) SetForm(form RoomForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modal.IsOpen() {
		return ErrModalClosed
	}
	s.form = form
	return nil
}

// Submit sends the form as a create or an update, depending on how the
// modal was opened. An invalid form issues no request and leaves the modal
// open.
func (s *RoomScreen) Submit(ctx context.Context) (models.Room, error) {
	s.mu.Lock()
	if !s.modal.IsOpen() {
		s.mu.Unlock()
		return models.Room{}, ErrModalClosed
	}
	if err := validateForm(s.form); err != nil {
		s.mu.Unlock()
		return models.Room{}, err
	}
	editID, editing := s.modal.EditingID()
	req := s.form.Request()
	s.modal.Submit()
	s.mu.Unlock()

	var (
		room models.Room
		err  error
	)
	if editing {
		room, err = s.gw.Update(ctx, editID, req)
	} else {
		room, err = s.gw.Create(ctx, req)
	}

	s.mu.Lock()
	if err != nil {
		s.modal.Fail()
		s.mu.Unlock()
		if editing {
			return models.Room{}, s.deps.fail(ctx, "update room", "No se pudo actualizar la habitación", err)
		}
		return models.Room{}, s.deps.fail(ctx, "create room", "Error al registrar habitación", err)
	}
	if editing {
		s.rooms = replaceByID(s.rooms, room, roomID)
	} else {
		s.rooms = append(s.rooms, room)
	}
	s.modal.Succeed()
	s.form = RoomForm{}
	s.mu.Unlock()

	if editing {
		s.deps.succeed(ctx, "Actualizada", "Habitación actualizada correctamente")
	} else {
		s.deps.succeed(ctx, "Registrada", "Habitación registrada correctamente")
	}
	return room, nil
}

// Delete asks for confirmation and removes the room. It reports whether a
// delete was issued and succeeded.
func (s *RoomScreen) Delete(ctx context.Context, id uint) (bool, error) {
	if err := s.deps.requireAdmin(); err != nil {
		return false, err
	}
	ok, err := s.deps.confirm(ctx, Prompt{
		Title:   "¿Estás seguro?",
		Text:    "La habitación será eliminada permanentemente",
		Confirm: "Sí, eliminar",
		Cancel:  "Cancelar",
	})
	if err != nil || !ok {
		return false, err
	}

	if err := s.gw.Delete(ctx, id); err != nil {
		return false, s.deps.fail(ctx, "delete room", "No se pudo eliminar la habitación", err)
	}

	s.mu.Lock()
	s.rooms = removeByID(s.rooms, id, roomID)
	s.mu.Unlock()
	s.deps.succeed(ctx, "Eliminada", "Habitación eliminada correctamente")
	return true, nil
}
