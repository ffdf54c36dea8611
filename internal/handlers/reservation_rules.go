package handlers

import (
	"math"
	"slices"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

var allowedTransitions = map[string][]string{
	models.ReservationConfirmada: {models.ReservationEnCurso, models.ReservationCancelada},
	models.ReservationEnCurso:    {models.ReservationFinalizada},
}

// roomStatusAfter is the room status a reservation transition leaves behind.
var roomStatusAfter = map[string]string{
	models.ReservationEnCurso:    models.RoomStatusOcupada,
	models.ReservationFinalizada: models.RoomStatusLimpieza,
}

func canTransition(from, to string) bool {
	return slices.Contains(allowedTransitions[from], to)
}

// staysBlocking are the statuses that hold a room for their date range.
var staysBlocking = []string{models.ReservationConfirmada, models.ReservationEnCurso}

// stayPrice returns the number of nights between the two dates and the
// total for the given nightly price, rounded to cents.
func stayPrice(checkIn, checkOut models.Date, pricePerNight float64) (int, float64) {
	nights := checkIn.DaysUntil(checkOut)
	total := math.Round(float64(nights)*pricePerNight*100) / 100
	return nights, total
}
