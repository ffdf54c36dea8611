package screens

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

type GuestGateway interface {
	List(ctx context.Context) ([]models.Guest, error)
	Create(ctx context.Context, req models.GuestFields) (models.Guest, error)
	Update(ctx context.Context, id uint, req models.GuestFields) (models.Guest, error)
	Delete(ctx context.Context, id uint) error
}

// Handoff starts a reservation for a freshly registered guest.
type Handoff func(ctx context.Context, guestID uint) error

// GuestScreen is the huéspedes catalog.
type GuestScreen struct {
	gw      GuestGateway
	deps    Deps
	handoff Handoff

	mu     sync.Mutex
	guests []models.Guest
	modal  Modal
	form   GuestForm
	title  string
}

func NewGuestScreen(gw GuestGateway, deps Deps) *GuestScreen {
	return &GuestScreen{gw: gw, deps: deps.forScreen("huespedes")}
}

// OnReserve sets the hand-off offered after a successful registration.
func (s *GuestScreen) OnReserve(h Handoff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handoff = h
}

func (s *GuestScreen) Activate(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.deps.Log.WithError(err).Error("Error al obtener huéspedes")
	}
}

func (s *GuestScreen) Reload(ctx context.Context) error {
	guests, err := s.gw.List(ctx)
	if err != nil {
		return fmt.Errorf("list guests: %w", err)
	}
	s.mu.Lock()
	s.guests = guests
	s.mu.Unlock()
	return nil
}

func (s *GuestScreen) Guests() []models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Guest(nil), s.guests...)
}

func (s *GuestScreen) Capabilities() Capabilities { return s.deps.Caps }

func (s *GuestScreen) ModalState() ModalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal.State()
}

func (s *GuestScreen) ModalTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

func (s *GuestScreen) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.OpenCreate()
	s.form = GuestForm{}
	s.title = "Registrar Huésped"
}

func (s *GuestScreen) OpenEdit(id uint) error {
	if err := s.deps.requireAdmin(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	guest, ok := findByID(s.guests, id, guestID)
	if !ok {
		return fmt.Errorf("guest %d: %w", id, ErrNotFound)
	}
	s.modal.OpenEdit(id)
	s.form = GuestFormFrom(guest)
	s.title = "Editando Huésped: " + guest.Name
	return nil
}

func (s *GuestScreen) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.form = GuestForm{}
}

func (s *GuestScreen) Form() GuestForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *GuestScreen) SetForm(form GuestForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modal.IsOpen() {
		return ErrModalClosed
	}
	s.form = form
	return nil
}

// Submit creates or updates the guest. After a registration the operator
// is asked whether to book a stay for the new guest.
func (s *GuestScreen) Submit(ctx context.Context) (models.Guest, error) {
	s.mu.Lock()
	if !s.modal.IsOpen() {
		s.mu.Unlock()
		return models.Guest{}, ErrModalClosed
	}
	if err := validateForm(s.form); err != nil {
		s.mu.Unlock()
		return models.Guest{}, err
	}
	editID, editing := s.modal.EditingID()
	req := s.form.Request()
	s.modal.Submit()
	s.mu.Unlock()

	var (
		guest models.Guest
		err   error
	)
	if editing {
		guest, err = s.gw.Update(ctx, editID, req)
	} else {
		guest, err = s.gw.Create(ctx, req)
	}

	s.mu.Lock()
	if err != nil {
		s.modal.Fail()
		s.mu.Unlock()
		if editing {
			return models.Guest{}, s.deps.fail(ctx, "update guest", "No se pudo actualizar el huésped", err)
		}
		return models.Guest{}, s.deps.fail(ctx, "create guest", "Error al registrar huésped", err)
	}
	if editing {
		s.guests = replaceByID(s.guests, guest, guestID)
	} else {
		s.guests = append(s.guests, guest)
	}
	s.modal.Succeed()
	s.form = GuestForm{}
	handoff := s.handoff
	s.mu.Unlock()

	if editing {
		s.deps.succeed(ctx, "Actualizado", "Huésped actualizado correctamente")
		return guest, nil
	}

	s.deps.succeed(ctx, "Registrado", "Huésped registrado correctamente")
	if handoff == nil {
		return guest, nil
	}
	ok, err := s.deps.confirm(ctx, Prompt{
		Title:   "Registrado",
		Text:    "¿Desea crear una reserva para este huésped?",
		Confirm: "Sí, crear reserva",
		Cancel:  "No, finalizar",
	})
	if err != nil {
		return guest, err
	}
	if ok {
		if err := handoff(ctx, guest.ID); err != nil {
			return guest, fmt.Errorf("reservation hand-off: %w", err)
		}
	}
	return guest, nil
}

func (s *GuestScreen) Delete(ctx context.Context, id uint) (bool, error) {
	if err := s.deps.requireAdmin(); err != nil {
		return false, err
	}
	ok, err := s.deps.confirm(ctx, Prompt{
		Title:   "¿Estás seguro?",
		Text:    "El huésped será eliminado permanentemente",
		Confirm: "Sí, eliminar",
		Cancel:  "Cancelar",
	})
	if err != nil || !ok {
		return false, err
	}

	if err := s.gw.Delete(ctx, id); err != nil {
		return false, s.deps.fail(ctx, "delete guest", "No se pudo eliminar el huésped", err)
	}

	s.mu.Lock()
	s.guests = removeByID(s.guests, id, guestID)
	s.mu.Unlock()
	s.deps.succeed(ctx, "Eliminado", "Huésped eliminado correctamente")
	return true, nil
}
