package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

const roomsPath = "habitaciones"

type RoomGateway struct {
	c *Client
}

func (g *RoomGateway) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := g.c.do(ctx, http.MethodGet, roomsPath, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (g *RoomGateway) Create(ctx context.Context, req models.RoomRequest) (models.Room, error) {
	var room models.Room
	err := g.c.do(ctx, http.MethodPost, roomsPath, req, &room)
	return room, err
}

func (g *RoomGateway) Update(ctx context.Context, id uint, req models.RoomRequest) (models.Room, error) {
	var room models.Room
	err := g.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", roomsPath, id), req, &room)
	return room, err
}

func (g *RoomGateway) Delete(ctx context.Context, id uint) error {
	return g.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", roomsPath, id), nil, nil)
}
