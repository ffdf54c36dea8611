package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

const reservationsPath = "reservas"

type ReservationGateway struct {
	c *Client
}

func (g *ReservationGateway) List(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := g.c.do(ctx, http.MethodGet, reservationsPath, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (g *ReservationGateway) Create(ctx context.Context, req models.ReservationRequest) (models.Reservation, error) {
	var reservation models.Reservation
	err := g.c.do(ctx, http.MethodPost, reservationsPath, req, &reservation)
	return reservation, err
}

func (g *ReservationGateway) Update(ctx context.Context, id uint, req models.ReservationRequest) (models.Reservation, error) {
	var reservation models.Reservation
	err := g.c.do(ctx, http.MethodPut, g.path(id), req, &reservation)
	return reservation, err
}

func (g *ReservationGateway) Delete(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, g.path(id), nil, nil)
}

func (g *ReservationGateway) CheckIn(ctx context.Context, id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := g.c.do(ctx, http.MethodPut, g.path(id)+"/check-in", nil, &reservation)
	return reservation, err
}

func (g *ReservationGateway) CheckOut(ctx context.Context, id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := g.c.do(ctx, http.MethodPut, g.path(id)+"/check-out", nil, &reservation)
	return reservation, err
}

// SetStatus moves the reservation to the status with the given catalog ID.
func (g *ReservationGateway) SetStatus(ctx context.Context, id uint, statusID int) (models.Reservation, error) {
	var reservation models.Reservation
	err := g.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/estado/%d", g.path(id), statusID), nil, &reservation)
	return reservation, err
}

func (g *ReservationGateway) Cancel(ctx context.Context, id uint) (models.Reservation, error) {
	code, _ := models.ReservationStatuses.ID(models.ReservationCancelada)
	return g.SetStatus(ctx, id, code)
}

func (g *ReservationGateway) path(id uint) string {
	return fmt.Sprintf("%s/%d", reservationsPath, id)
}
