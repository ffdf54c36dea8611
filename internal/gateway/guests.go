package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

const guestsPath = "huespedes"

type GuestGateway struct {
	c *Client
}

func (g *GuestGateway) List(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := g.c.do(ctx, http.MethodGet, guestsPath, nil, &guests); err != nil {
		return nil, err
	}
	return guests, nil
}

func (g *GuestGateway) Create(ctx context.Context, req models.GuestFields) (models.Guest, error) {
	var guest models.Guest
	err := g.c.do(ctx, http.MethodPost, guestsPath, req, &guest)
	return guest, err
}

func (g *GuestGateway) Update(ctx context.Context, id uint, req models.GuestFields) (models.Guest, error) {
	var guest models.Guest
	err := g.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", guestsPath, id), req, &guest)
	return guest, err
}

func (g *GuestGateway) Delete(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", guestsPath, id), nil, nil)
}
