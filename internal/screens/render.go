package screens

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/samber/lo"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }

func (s *RoomScreen) Render(w io.Writer) error {
	headers := []string{"ID", "NÚMERO", "TIPO", "ESTADO", "PRECIO/NOCHE", "CAPACIDAD"}
	if s.deps.Caps.Admin {
		headers = append(headers, "ACCIONES")
	}
	tw := newTable(w, headers...)
	for _, r := range s.Rooms() {
		row := []string{
			fmt.Sprint(r.ID),
			r.Number,
			models.RoomTypes.Label(r.Type),
			models.RoomStatuses.Label(r.Status),
			money(r.PricePerNight),
			fmt.Sprint(r.Capacity),
		}
		if s.deps.Caps.Admin {
			row = append(row, "editar, eliminar")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func (s *GuestScreen) Render(w io.Writer) error {
	headers := []string{"ID", "NOMBRE", "EMAIL", "TELÉFONO", "DOCUMENTO", "NACIONALIDAD"}
	if s.deps.Caps.Admin {
		headers = append(headers, "ACCIONES")
	}
	tw := newTable(w, headers...)
	for _, g := range s.Guests() {
		row := []string{
			fmt.Sprint(g.ID),
			g.FullName(),
			g.Email,
			g.Phone,
			models.DocumentTypes.Label(g.DocumentType),
			models.Nationalities.Label(NormalizeNationality(g.Nationality)),
		}
		if s.deps.Caps.Admin {
			row = append(row, "editar, eliminar")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func (s *ReservationScreen) Render(w io.Writer) error {
	tw := newTable(w, "ID", "HUÉSPED", "HABITACIÓN", "ENTRADA", "SALIDA", "NOCHES", "TOTAL", "ESTADO", "ACCIONES")
	for _, r := range s.Reservations() {
		fmt.Fprintln(tw, strings.Join([]string{
			fmt.Sprint(r.ID),
			r.Guest.FullName(),
			r.Room.Number,
			r.CheckIn,
			r.CheckOut,
			fmt.Sprint(r.Nights),
			money(r.Total),
			models.ReservationStatuses.Label(r.Status),
			strings.Join(s.actionsFor(r), ", "),
		}, "\t"))
	}
	return tw.Flush()
}

// actionsFor lists what the operator can do with r in its current status.
func (s *ReservationScreen) actionsFor(r models.Reservation) []string {
	var actions []string
	switch r.Status {
	case models.ReservationConfirmada:
		actions = append(actions, "check-in", "cancelar")
	case models.ReservationEnCurso:
		actions = append(actions, "check-out")
	}
	if s.deps.Caps.Admin && r.Status != models.ReservationEnCurso {
		actions = append(actions, "eliminar")
	}
	return actions
}

func (s *UserScreen) Render(w io.Writer) error {
	headers := []string{"ID", "USUARIO", "ROLES"}
	if s.deps.Caps.Admin {
		headers = append(headers, "ACCIONES")
	}
	tw := newTable(w, headers...)
	for _, u := range s.Users() {
		row := []string{
			fmt.Sprint(u.ID),
			u.Username,
			strings.Join(lo.Map(u.Roles, func(r string, _ int) string { return models.Roles.Label(r) }), ", "),
		}
		if s.deps.Caps.Admin {
			row = append(row, "eliminar")
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
