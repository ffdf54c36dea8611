package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-admin/internal/database"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type GuestHandler struct {
	db *gorm.DB
}

func NewGuestHandler(db *gorm.DB) *GuestHandler {
	return &GuestHandler{db: db}
}

type GuestOutput struct {
	Body models.Guest
}

type GuestListOutput struct {
	Body []models.Guest
}

type CreateGuestInput struct {
	Body models.GuestFields
}

type UpdateGuestInput struct {
	ID   uint `path:"id"`
	Body models.GuestFields
}

type GuestIDInput struct {
	ID uint `path:"id"`
}

func (h *GuestHandler) HandleList(ctx context.Context, _ *struct{}) (*GuestListOutput, error) {
	var guests []database.Guest
	if err := h.db.WithContext(ctx).Order("id ASC").Find(&guests).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list guests")
	}

	return &GuestListOutput{
		Body: lo.Map(guests, func(g database.Guest, _ int) models.Guest { return g.Record() }),
	}, nil
}

func (h *GuestHandler) HandleCreate(ctx context.Context, input *CreateGuestInput) (*GuestOutput, error) {
	guest := database.Guest{GuestFields: input.Body}
	if err := h.db.WithContext(ctx).Create(&guest).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create guest")
	}

	return &GuestOutput{Body: guest.Record()}, nil
}

func (h *GuestHandler) HandleUpdate(ctx context.Context, input *UpdateGuestInput) (*GuestOutput, error) {
	db := h.db.WithContext(ctx)

	var guest database.Guest
	if err := db.First(&guest, input.ID).Error; err != nil {
		return nil, notFoundOr500(err, "Huésped no encontrado")
	}

	guest.GuestFields = input.Body
	if err := db.Save(&guest).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update guest")
	}

	return &GuestOutput{Body: guest.Record()}, nil
}

func (h *GuestHandler) HandleDelete(ctx context.Context, input *GuestIDInput) (*struct{}, error) {
	db := h.db.WithContext(ctx)

	var count int64
	if err := db.Model(&database.Reservation{}).Where("guest_id = ?", input.ID).Count(&count).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to check reservations")
	}
	if count > 0 {
		return nil, huma.Error409Conflict("El huésped tiene reservas registradas")
	}

	res := db.Unscoped().Delete(&database.Guest{}, input.ID)
	if res.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to delete guest")
	}
	if res.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Huésped no encontrado")
	}

	return nil, nil
}
