package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gdg-garage/hotel-admin/internal/gateway"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/gdg-garage/hotel-admin/internal/screens"
	"github.com/spf13/pflag"
)

type command func(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error

var commands = map[string]map[string]command{
	"habitaciones": {
		"list":   listRooms,
		"create": createRoom,
		"edit":   editRoom,
		"delete": deleteRoom,
	},
	"huespedes": {
		"list":   listGuests,
		"create": createGuest,
		"edit":   editGuest,
		"delete": deleteGuest,
	},
	"reservas": {
		"list":      listReservations,
		"create":    createReservation,
		"check-in":  checkInReservation,
		"check-out": checkOutReservation,
		"cancel":    cancelReservation,
		"delete":    deleteReservation,
	},
	"usuarios": {
		"list":   listUsers,
		"create": createUser,
		"delete": deleteUser,
	},
}

// catalogID accepts a catalog ID or a name ("suite" and "Reino Unido" work).
func catalogID(cat *models.Catalog, value string) (int, error) {
	if n, err := strconv.Atoi(value); err == nil {
		if _, ok := cat.Name(n); ok {
			return n, nil
		}
	}
	name := strings.Join(strings.Fields(strings.ToUpper(value)), "_")
	if id, ok := cat.ID(name); ok {
		return id, nil
	}
	return 0, fmt.Errorf("valor desconocido %q (opciones: %s)", value, strings.Join(cat.Names(), ", "))
}

func requireID(fs *pflag.FlagSet, id *uint) error {
	if !fs.Changed("id") || *id == 0 {
		return fmt.Errorf("%w: --id es obligatorio", ErrUsage)
	}
	return nil
}

func reportDone(a *App, done bool) error {
	if !done {
		fmt.Fprintln(a.out, "Operación cancelada")
	}
	return nil
}

// Rooms

type roomFlags struct {
	number   *string
	typ      *string
	status   *string
	price    *float64
	capacity *int
}

func bindRoomFlags(fs *pflag.FlagSet) roomFlags {
	return roomFlags{
		number:   fs.String("numero", "", "room number"),
		typ:      fs.String("tipo", "", "room type: "+strings.Join(models.RoomTypes.Names(), ", ")),
		status:   fs.String("estado", "", "room status: "+strings.Join(models.RoomStatuses.Names(), ", ")),
		price:    fs.Float64("precio", 0, "price per night"),
		capacity: fs.Int("capacidad", 0, "number of guests"),
	}
}

func (f roomFlags) apply(fs *pflag.FlagSet, form *screens.RoomForm) error {
	if fs.Changed("numero") {
		form.Number = *f.number
	}
	if fs.Changed("tipo") {
		id, err := catalogID(models.RoomTypes, *f.typ)
		if err != nil {
			return fmt.Errorf("--tipo: %w", err)
		}
		form.TypeID = id
	}
	if fs.Changed("estado") {
		id, err := catalogID(models.RoomStatuses, *f.status)
		if err != nil {
			return fmt.Errorf("--estado: %w", err)
		}
		form.StatusID = id
	}
	if fs.Changed("precio") {
		form.PricePerNight = *f.price
	}
	if fs.Changed("capacidad") {
		form.Capacity = *f.capacity
	}
	return nil
}

func listRooms(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	s := screens.NewRoomScreen(c.Rooms(), deps)
	if err := s.Reload(ctx); err != nil {
		return err
	}
	return s.Render(a.out)
}

func createRoom(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	flags := bindRoomFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s := screens.NewRoomScreen(c.Rooms(), deps)
	s.OpenCreate()
	form := s.Form()
	if err := flags.apply(fs, &form); err != nil {
		return err
	}
	s.SetForm(form)
	_, err := s.Submit(ctx)
	return err
}

func editRoom(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	id := fs.UintP("id", "i", 0, "room ID")
	flags := bindRoomFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID(fs, id); err != nil {
		return err
	}
	s := screens.NewRoomScreen(c.Rooms(), deps)
	if err := s.Reload(ctx); err != nil {
		return err
	}
	if err := s.OpenEdit(*id); err != nil {
		return err
	}
	form := s.Form()
	if err := flags.apply(fs, &form); err != nil {
		return err
	}
	s.SetForm(form)
	_, err := s.Submit(ctx)
	return err
}

func deleteRoom(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	id := fs.UintP("id", "i", 0, "room ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID(fs, id); err != nil {
		return err
	}
	done, err := screens.NewRoomScreen(c.Rooms(), deps).Delete(ctx, *id)
	if err != nil {
		return err
	}
	return reportDone(a, done)
}

// Guests

type guestFlags struct {
	name, firstSurname, secondSurname *string
	email, phone                      *string
	document, nationality             *string
}

func bindGuestFlags(fs *pflag.FlagSet) guestFlags {
	return guestFlags{
		name:          fs.String("nombre", "", "given name"),
		firstSurname:  fs.String("apellido-paterno", "", "first surname"),
		secondSurname: fs.String("apellido-materno", "", "second surname"),
		email:         fs.String("email", "", "e-mail address"),
		phone:         fs.String("telefono", "", "10-digit phone number"),
		document:      fs.String("documento", "", "document type: "+strings.Join(models.DocumentTypes.Names(), ", ")),
		nationality:   fs.String("nacionalidad", "", "nationality, as a name or label"),
	}
}

func (f guestFlags) apply(fs *pflag.FlagSet, form *screens.GuestForm) {
	set := func(flag string, dst *string, v *string) {
		if fs.Changed(flag) {
			*dst = *v
		}
	}
	set("nombre", &form.Name, f.name)
	set("apellido-paterno", &form.FirstSurname, f.firstSurname)
	set("apellido-materno", &form.SecondSurname, f.secondSurname)
	set("email", &form.Email, f.email)
	set("telefono", &form.Phone, f.phone)
	if fs.Changed("documento") {
		form.DocumentType = strings.ToUpper(strings.TrimSpace(*f.document))
	}
	if fs.Changed("nacionalidad") {
		form.Nationality = screens.NormalizeNationality(*f.nationality)
	}
}

func listGuests(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	s := screens.NewGuestScreen(c.Guests(), deps)
	if err := s.Reload(ctx); err != nil {
		return err
	}
	return s.Render(a.out)
}

// createGuest offers to book a stay right after the registration. The
// booking uses --habitacion, --entrada and --salida when they are given.
func createGuest(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	flags := bindGuestFlags(fs)
	stay := bindStayFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := screens.NewGuestScreen(c.Guests(), deps)
	s.OnReserve(func(ctx context.Context, guestID uint) error {
		if !fs.Changed("habitacion") || !fs.Changed("entrada") || !fs.Changed("salida") {
			fmt.Fprintf(a.out, "Para reservar: hotel-admin reservas create --huesped %d --habitacion <id> --entrada AAAA-MM-DD --salida AAAA-MM-DD\n", guestID)
			return nil
		}
		rs := screens.NewReservationScreen(c.Reservations(), c.Rooms(), c.Guests(), deps)
		rs.OpenCreateFor(guestID)
		return stay.submit(ctx, a.out, rs)
	})

	s.OpenCreate()
	form := s.Form()
	flags.apply(fs, &form)
	s.SetForm(form)
	_, err := s.Submit(ctx)
	return err
}

func editGuest(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	id := fs.UintP("id", "i", 0, "guest ID")
	flags := bindGuestFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID(fs, id); err != nil {
		return err
	}
	s := screens.NewGuestScreen(c.Guests(), deps)
	if err := s.Reload(ctx); err != nil {
		return err
	}
	if err := s.OpenEdit(*id); err != nil {
		return err
	}
	form := s.Form()
	flags.apply(fs, &form)
	s.SetForm(form)
	_, err := s.Submit(ctx)
	return err
}

func deleteGuest(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	id := fs.UintP("id", "i", 0, "guest ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID(fs, id); err != nil {
		return err
	}
	done, err := screens.NewGuestScreen(c.Guests(), deps).Delete(ctx, *id)
	if err != nil {
		return err
	}
	return reportDone(a, done)
}

// Reservations

type stayFlags struct {
	room     *uint
	checkIn  *string
	checkOut *string
}

func bindStayFlags(fs *pflag.FlagSet) stayFlags {
	return stayFlags{
		room:     fs.Uint("habitacion", 0, "room ID"),
		checkIn:  fs.String("entrada", "", "check-in date (YYYY-MM-DD)"),
		checkOut: fs.String("salida", "", "check-out date (YYYY-MM-DD)"),
	}
}

func (f stayFlags) submit(ctx context.Context, out io.Writer, rs *screens.ReservationScreen) error {
	if err := rs.SetRoom(*f.room); err != nil {
		return err
	}
	if *f.checkIn != "" {
		d, err := models.ParseDate(*f.checkIn)
		if err != nil {
			return fmt.Errorf("--entrada: %w", err)
		}
		if err := rs.SetCheckIn(d); err != nil {
			return err
		}
	}
	if *f.checkOut != "" {
		d, err := models.ParseDate(*f.checkOut)
		if err != nil {
			return fmt.Errorf("--salida: %w", err)
		}
		if err := rs.SetCheckOut(d); err != nil {
			return err
		}
	}
	r, err := rs.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Reserva #%d: habitación %s, %d noche(s), total $%.2f\n", r.ID, r.Room.Number, r.Nights, r.Total)
	return nil
}

func newReservationScreen(ctx context.Context, deps screens.Deps, c *gateway.Client) *screens.ReservationScreen {
	s := screens.NewReservationScreen(c.Reservations(), c.Rooms(), c.Guests(), deps)
	s.Activate(ctx)
	return s
}

func listReservations(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	s := screens.NewReservationScreen(c.Reservations(), c.Rooms(), c.Guests(), deps)
	if err := s.Reload(ctx); err != nil {
		return err
	}
	return s.Render(a.out)
}

func createReservation(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	guest := fs.Uint("huesped", 0, "guest ID")
	stay := bindStayFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s := newReservationScreen(ctx, deps, c)
	s.OpenCreateFor(*guest)
	return stay.submit(ctx, a.out, s)
}

func transitionCommand(run func(*screens.ReservationScreen, context.Context, uint) (bool, error)) command {
	return func(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
		id := fs.UintP("id", "i", 0, "reservation ID")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if err := requireID(fs, id); err != nil {
			return err
		}
		done, err := run(newReservationScreen(ctx, deps, c), ctx, *id)
		if err != nil {
			return err
		}
		return reportDone(a, done)
	}
}

var (
	checkInReservation  = transitionCommand((*screens.ReservationScreen).CheckIn)
	checkOutReservation = transitionCommand((*screens.ReservationScreen).CheckOut)
	cancelReservation   = transitionCommand((*screens.ReservationScreen).Cancel)
	deleteReservation   = transitionCommand((*screens.ReservationScreen).Delete)
)

// Users

func listUsers(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	s := screens.NewUserScreen(c.Users(), deps)
	if err := s.Reload(ctx); err != nil {
		return err
	}
	return s.Render(a.out)
}

func createUser(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	username := fs.String("username", "", "user name (5-20 letters or digits)")
	password := fs.String("password", "", "password (at least 8 characters)")
	roles := fs.StringSlice("rol", []string{models.RoleUser}, "roles: "+strings.Join(models.Roles.Names(), ", "))
	if err := fs.Parse(args); err != nil {
		return err
	}
	s := screens.NewUserScreen(c.Users(), deps)
	if err := s.OpenCreate(); err != nil {
		return err
	}
	form := s.Form()
	form.Username, form.Password = *username, *password
	form.Roles = make([]string, 0, len(*roles))
	for _, r := range *roles {
		form.Roles = append(form.Roles, strings.ToUpper(strings.TrimSpace(r)))
	}
	s.SetForm(form)
	_, err := s.Submit(ctx)
	return err
}

func deleteUser(ctx context.Context, a *App, deps screens.Deps, c *gateway.Client, fs *pflag.FlagSet, args []string) error {
	username := fs.String("username", "", "user name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("%w: --username es obligatorio", ErrUsage)
	}
	done, err := screens.NewUserScreen(c.Users(), deps).Delete(ctx, *username)
	if err != nil {
		return err
	}
	return reportDone(a, done)
}
