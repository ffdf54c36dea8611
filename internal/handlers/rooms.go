package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-admin/internal/database"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type RoomHandler struct {
	db *gorm.DB
}

func NewRoomHandler(db *gorm.DB) *RoomHandler {
	return &RoomHandler{db: db}
}

type RoomOutput struct {
	Body models.Room
}

type RoomListOutput struct {
	Body []models.Room
}

type CreateRoomInput struct {
	Body models.RoomRequest
}

type UpdateRoomInput struct {
	ID   uint `path:"id"`
	Body models.RoomRequest
}

type RoomIDInput struct {
	ID uint `path:"id"`
}

func (h *RoomHandler) HandleList(ctx context.Context, _ *struct{}) (*RoomListOutput, error) {
	var rooms []database.Room
	if err := h.db.WithContext(ctx).Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list rooms")
	}

	return &RoomListOutput{
		Body: lo.Map(rooms, func(r database.Room, _ int) models.Room { return r.Record() }),
	}, nil
}

func (h *RoomHandler) HandleCreate(ctx context.Context, input *CreateRoomInput) (*RoomOutput, error) {
	var room database.Room
	if err := applyRoomRequest(&room, input.Body); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	if err := checkRoomNumberFree(db, room.Number, 0); err != nil {
		return nil, err
	}
	if err := db.Create(&room).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create room")
	}

	return &RoomOutput{Body: room.Record()}, nil
}

func (h *RoomHandler) HandleUpdate(ctx context.Context, input *UpdateRoomInput) (*RoomOutput, error) {
	db := h.db.WithContext(ctx)

	var room database.Room
	if err := db.First(&room, input.ID).Error; err != nil {
		return nil, notFoundOr500(err, "Habitación no encontrada")
	}
	if err := applyRoomRequest(&room, input.Body); err != nil {
		return nil, err
	}
	if err := checkRoomNumberFree(db, room.Number, room.ID); err != nil {
		return nil, err
	}
	if err := db.Save(&room).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update room")
	}

	return &RoomOutput{Body: room.Record()}, nil
}

func (h *RoomHandler) HandleDelete(ctx context.Context, input *RoomIDInput) (*struct{}, error) {
	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Model(&database.Reservation{}).Where("room_id = ?", input.ID).Count(&count).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to check reservations")
	}
	if count > 0 {
		return nil, huma.Error409Conflict("La habitación tiene reservas registradas")
	}

	res := db.Unscoped().Delete(&database.Room{}, input.ID)
	if res.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to delete room")
	}
	if res.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Habitación no encontrada")
	}

	return nil, nil
}

func applyRoomRequest(room *database.Room, req models.RoomRequest) error {
	roomType, ok := models.RoomTypes.Name(req.TypeID)
	if !ok {
		return fieldError("idTipo", "Tipo de habitación desconocido")
	}
	status, ok := models.RoomStatuses.Name(req.StatusID)
	if !ok {
		return fieldError("idEstado", "Estado de habitación desconocido")
	}

	room.Number = req.Number
	room.Type = roomType
	room.Status = status
	room.PricePerNight = req.PricePerNight
	room.Capacity = req.Capacity
	return nil
}

func checkRoomNumberFree(db *gorm.DB, number string, exceptID uint) error {
	var count int64
	if err := db.Model(&database.Room{}).Where("number = ? AND id <> ?", number, exceptID).Count(&count).Error; err != nil {
		return huma.Error500InternalServerError("Failed to check room number")
	}
	if count > 0 {
		return huma.Error409Conflict(fmt.Sprintf("Ya existe una habitación con el número %s", number))
	}
	return nil
}

func notFoundOr500(err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return huma.Error404NotFound(notFound)
	}
	return huma.Error500InternalServerError("Database error")
}
