package screens

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

type ReservationGateway interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Create(ctx context.Context, req models.ReservationRequest) (models.Reservation, error)
	Delete(ctx context.Context, id uint) error
	CheckIn(ctx context.Context, id uint) (models.Reservation, error)
	CheckOut(ctx context.Context, id uint) (models.Reservation, error)
	Cancel(ctx context.Context, id uint) (models.Reservation, error)
}

type RoomLister interface {
	List(ctx context.Context) ([]models.Room, error)
}

type GuestLister interface {
	List(ctx context.Context) ([]models.Guest, error)
}

// ReservationScreen is the reservas catalog: a create modal over guest and
// room pickers, and the stay transitions. Transitions are open to every
// signed-in operator; delete needs the admin capability.
type ReservationScreen struct {
	gw     ReservationGateway
	rooms  RoomLister
	guests GuestLister
	deps   Deps

	mu           sync.Mutex
	reservations []models.Reservation
	roomPicker   []models.Room
	guestPicker  []models.Guest
	modal        Modal
	form         ReservationForm
}

func NewReservationScreen(gw ReservationGateway, rooms RoomLister, guests GuestLister, deps Deps) *ReservationScreen {
	return &ReservationScreen{gw: gw, rooms: rooms, guests: guests, deps: deps.forScreen("reservas")}
}

// Activate loads the pickers and the list. Failures are only logged.
func (s *ReservationScreen) Activate(ctx context.Context) {
	if err := s.LoadPickers(ctx); err != nil {
		s.deps.Log.WithError(err).Error("Error al cargar catálogos")
	}
	if err := s.Reload(ctx); err != nil {
		s.deps.Log.WithError(err).Error("Error al listar reservas")
	}
}

func (s *ReservationScreen) LoadPickers(ctx context.Context) error {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}
	guests, err := s.guests.List(ctx)
	if err != nil {
		return fmt.Errorf("list guests: %w", err)
	}
	s.mu.Lock()
	s.roomPicker, s.guestPicker = rooms, guests
	s.mu.Unlock()
	return nil
}

func (s *ReservationScreen) Reload(ctx context.Context) error {
	reservations, err := s.gw.List(ctx)
	if err != nil {
		return fmt.Errorf("list reservations: %w", err)
	}
	s.mu.Lock()
	s.reservations = reservations
	s.mu.Unlock()
	return nil
}

func (s *ReservationScreen) Reservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Reservation(nil), s.reservations...)
}

func (s *ReservationScreen) RoomOptions() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Room(nil), s.roomPicker...)
}

func (s *ReservationScreen) GuestOptions() []models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Guest(nil), s.guestPicker...)
}

func (s *ReservationScreen) Capabilities() Capabilities { return s.deps.Caps }

func (s *ReservationScreen) ModalState() ModalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal.State()
}

func (s *ReservationScreen) ModalTitle() string { return "Registrar Reserva" }

func (s *ReservationScreen) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.OpenCreate()
	s.form = ReservationForm{}
}

// OpenCreateFor opens the create modal with the guest already selected.
func (s *ReservationScreen) OpenCreateFor(guestID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.OpenCreate()
	s.form = ReservationForm{GuestID: guestID}
}

func (s *ReservationScreen) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.form = ReservationForm{}
}

func (s *ReservationScreen) Form() ReservationForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *ReservationScreen) SetGuest(id uint) error {
	return s.edit(func(f *ReservationForm) error { f.GuestID = id; return nil })
}

func (s *ReservationScreen) SetRoom(id uint) error {
	return s.edit(func(f *ReservationForm) error { f.RoomID = id; return nil })
}

// SetCheckIn rejects days before today. A check-out that the new check-in
// would leave before it is cleared.
func (s *ReservationScreen) SetCheckIn(d models.Date) error {
	today := s.today()
	return s.edit(func(f *ReservationForm) error {
		if d.Before(today) {
			return fieldError("fechaEntrada", "La fecha de entrada no puede ser anterior a hoy")
		}
		f.CheckIn = d
		if !f.CheckOut.IsZero() && f.CheckOut.Before(d) {
			f.CheckOut = models.Date{}
		}
		return nil
	})
}

// SetCheckOut rejects days before the selected check-in.
func (s *ReservationScreen) SetCheckOut(d models.Date) error {
	return s.edit(func(f *ReservationForm) error {
		if !f.CheckIn.IsZero() && d.Before(f.CheckIn) {
			return fieldError("fechaSalida", "La fecha de salida no puede ser anterior a la fecha de entrada")
		}
		f.CheckOut = d
		return nil
	})
}

// MinCheckOut is the earliest day the check-out picker offers.
func (s *ReservationScreen) MinCheckOut() models.Date {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.form.CheckIn.IsZero() {
		return s.form.CheckIn
	}
	return s.today()
}

func (s *ReservationScreen) edit(fn func(*ReservationForm) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modal.IsOpen() {
		return ErrModalClosed
	}
	next := s.form
	if err := fn(&next); err != nil {
		return err
	}
	s.form = next
	return nil
}

func (s *ReservationScreen) validate(f ReservationForm) error {
	fe := &FormError{Fields: map[string]string{}}
	if err := validateForm(f); err != nil && !errors.As(err, &fe) {
		return err
	}
	switch {
	case f.CheckIn.IsZero():
		fe.Fields["fechaEntrada"] = "Campo obligatorio"
	case f.CheckIn.Before(s.today()):
		fe.Fields["fechaEntrada"] = "La fecha de entrada no puede ser anterior a hoy"
	}
	switch {
	case f.CheckOut.IsZero():
		fe.Fields["fechaSalida"] = "Campo obligatorio"
	case !f.CheckIn.IsZero() && f.CheckOut.Before(f.CheckIn):
		fe.Fields["fechaSalida"] = "La fecha de salida no puede ser anterior a la fecha de entrada"
	}
	if len(fe.Fields) > 0 {
		return fe
	}
	return nil
}

func (s *ReservationScreen) Submit(ctx context.Context) (models.Reservation, error) {
	s.mu.Lock()
	if !s.modal.IsOpen() {
		s.mu.Unlock()
		return models.Reservation{}, ErrModalClosed
	}
	if err := s.validate(s.form); err != nil {
		s.mu.Unlock()
		return models.Reservation{}, err
	}
	req := s.form.Request()
	s.modal.Submit()
	s.mu.Unlock()

	reservation, err := s.gw.Create(ctx, req)

	s.mu.Lock()
	if err != nil {
		s.modal.Fail()
		s.mu.Unlock()
		return models.Reservation{}, s.deps.fail(ctx, "create reservation", "Error al crear reserva", err)
	}
	s.reservations = append(s.reservations, reservation)
	s.modal.Succeed()
	s.form = ReservationForm{}
	s.mu.Unlock()

	s.deps.succeed(ctx, "Registrado", "Reserva creada exitosamente")
	return reservation, nil
}

// CheckIn starts the stay. When the check-in day has already passed the
// operator is asked first.
func (s *ReservationScreen) CheckIn(ctx context.Context, id uint) (bool, error) {
	reservation, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	checkIn, err := reservation.CheckInDate()
	if err == nil && s.today().After(checkIn) {
		ok, err := s.deps.confirm(ctx, Prompt{
			Title:   "Check-in tardío",
			Text:    fmt.Sprintf("La fecha de entrada (%s) ya pasó. ¿Desea realizar el check-in de todos modos?", checkIn),
			Confirm: "Sí, continuar",
			Cancel:  "Cancelar",
		})
		if err != nil || !ok {
			return false, err
		}
	}
	return s.transition(ctx, id, s.gw.CheckIn, "check-in", "Error en Check-in", "Check-in", "Check-in realizado con éxito")
}

// CheckOut ends the stay, asking first when the check-out day has passed.
func (s *ReservationScreen) CheckOut(ctx context.Context, id uint) (bool, error) {
	reservation, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	checkOut, err := reservation.CheckOutDate()
	if err == nil && s.today().After(checkOut) {
		ok, err := s.deps.confirm(ctx, Prompt{
			Title:   "Check-out tardío",
			Text:    fmt.Sprintf("La fecha de salida (%s) ya pasó. ¿Desea realizar el check-out de todos modos?", checkOut),
			Confirm: "Sí, continuar",
			Cancel:  "Cancelar",
		})
		if err != nil || !ok {
			return false, err
		}
	}
	return s.transition(ctx, id, s.gw.CheckOut, "check-out", "Error en Check-out", "Check-out", "Check-out realizado con éxito")
}

func (s *ReservationScreen) Cancel(ctx context.Context, id uint) (bool, error) {
	ok, err := s.deps.confirm(ctx, Prompt{
		Title:   "¿Estás seguro?",
		Text:    "La reserva será cancelada.",
		Confirm: "Sí, cancelar",
		Cancel:  "No",
	})
	if err != nil || !ok {
		return false, err
	}
	return s.transition(ctx, id, s.gw.Cancel, "cancel reservation", "Error al cancelar", "Cancelada", "Reserva cancelada")
}

func (s *ReservationScreen) Delete(ctx context.Context, id uint) (bool, error) {
	if err := s.deps.requireAdmin(); err != nil {
		return false, err
	}
	ok, err := s.deps.confirm(ctx, Prompt{
		Title:   "¿Estás seguro?",
		Text:    "Se eliminará permanentemente.",
		Confirm: "Sí, eliminar",
		Cancel:  "Cancelar",
	})
	if err != nil || !ok {
		return false, err
	}

	if err := s.gw.Delete(ctx, id); err != nil {
		return false, s.deps.fail(ctx, "delete reservation", "Error al eliminar", err)
	}

	s.mu.Lock()
	s.reservations = removeByID(s.reservations, id, reservationID)
	s.mu.Unlock()
	s.deps.succeed(ctx, "Eliminado", "Reserva eliminada")
	return true, nil
}

func (s *ReservationScreen) transition(
	ctx context.Context,
	id uint,
	call func(context.Context, uint) (models.Reservation, error),
	action, fallback, title, text string,
) (bool, error) {
	reservation, err := call(ctx, id)
	if err != nil {
		return false, s.deps.fail(ctx, action, fallback, err)
	}

	s.mu.Lock()
	s.reservations = replaceByID(s.reservations, reservation, reservationID)
	s.mu.Unlock()
	s.deps.succeed(ctx, title, text)
	return true, nil
}

func (s *ReservationScreen) lookup(id uint) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reservation, ok := findByID(s.reservations, id, reservationID)
	if !ok {
		return models.Reservation{}, fmt.Errorf("reservation %d: %w", id, ErrNotFound)
	}
	return reservation, nil
}

func (s *ReservationScreen) today() models.Date {
	return models.DateOf(s.deps.Now())
}
