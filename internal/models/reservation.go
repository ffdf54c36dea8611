package models

const (
	ReservationConfirmada = "CONFIRMADA"
	ReservationEnCurso    = "EN_CURSO"
	ReservationFinalizada = "FINALIZADA"
	ReservationCancelada  = "CANCELADA"
)

var ReservationStatuses = NewCatalog(
	Code{ID: 1, Name: ReservationConfirmada, Label: "Confirmada"},
	Code{ID: 2, Name: ReservationEnCurso, Label: "En Curso"},
	Code{ID: 3, Name: ReservationFinalizada, Label: "Finalizada"},
	Code{ID: 4, Name: ReservationCancelada, Label: "Cancelada"},
)

// ReservationRequest books a room for a guest. Dates are ISO calendar dates.
type ReservationRequest struct {
	GuestID  uint   `json:"idHuesped" minimum:"1"`
	RoomID   uint   `json:"idHabitacion" minimum:"1"`
	CheckIn  string `json:"fechaEntrada" format:"date"`
	CheckOut string `json:"fechaSalida" format:"date"`
}

// Reservation is a reserva as the API returns it. Nights and Total are
// computed by the server.
type Reservation struct {
	ID       uint    `json:"id"`
	Guest    Guest   `json:"huesped"`
	Room     Room    `json:"habitacion"`
	CheckIn  string  `json:"fechaEntrada"`
	CheckOut string  `json:"fechaSalida"`
	Nights   int     `json:"cantNoches"`
	Total    float64 `json:"montoTotal"`
	Status   string  `json:"estado"`
}

func (r Reservation) CheckInDate() (Date, error) {
	return ParseDate(r.CheckIn)
}

func (r Reservation) CheckOutDate() (Date, error) {
	return ParseDate(r.CheckOut)
}
