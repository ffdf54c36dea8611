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
	"gorm.io/gorm/clause"
)

type ReservationHandler struct {
	db *gorm.DB
}

func NewReservationHandler(db *gorm.DB) *ReservationHandler {
	return &ReservationHandler{db: db}
}

type ReservationOutput struct {
	Body models.Reservation
}

type ReservationListOutput struct {
	Body []models.Reservation
}

type CreateReservationInput struct {
	Body models.ReservationRequest
}

type UpdateReservationInput struct {
	ID   uint `path:"id"`
	Body models.ReservationRequest
}

type ReservationIDInput struct {
	ID uint `path:"id"`
}

type SetReservationStatusInput struct {
	ID   uint `path:"id"`
	Code int  `path:"code" doc:"Numeric reservation status"`
}

func (h *ReservationHandler) HandleList(ctx context.Context, _ *struct{}) (*ReservationListOutput, error) {
	var reservations []database.Reservation
	err := h.db.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		Order("id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list reservations")
	}

	return &ReservationListOutput{
		Body: lo.Map(reservations, func(r database.Reservation, _ int) models.Reservation { return r.Record() }),
	}, nil
}

func (h *ReservationHandler) HandleCreate(ctx context.Context, input *CreateReservationInput) (*ReservationOutput, error) {
	reservation := database.Reservation{Status: models.ReservationConfirmada}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyReservationRequest(tx, &reservation, input.Body); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&reservation).Error
	})
	if err != nil {
		return nil, asStatusError(err, "Failed to create reservation")
	}

	return &ReservationOutput{Body: reservation.Record()}, nil
}

func (h *ReservationHandler) HandleUpdate(ctx context.Context, input *UpdateReservationInput) (*ReservationOutput, error) {
	var reservation database.Reservation

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, input.ID).Error; err != nil {
			return notFoundOr500(err, "Reserva no encontrada")
		}
		if reservation.Status != models.ReservationConfirmada {
			return huma.Error409Conflict("Solo se pueden modificar reservas confirmadas")
		}
		if err := applyReservationRequest(tx, &reservation, input.Body); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&reservation).Error
	})
	if err != nil {
		return nil, asStatusError(err, "Failed to update reservation")
	}

	return &ReservationOutput{Body: reservation.Record()}, nil
}

func (h *ReservationHandler) HandleDelete(ctx context.Context, input *ReservationIDInput) (*struct{}, error) {
	db := h.db.WithContext(ctx)

	var reservation database.Reservation
	if err := db.First(&reservation, input.ID).Error; err != nil {
		return nil, notFoundOr500(err, "Reserva no encontrada")
	}
	if reservation.Status == models.ReservationEnCurso {
		return nil, huma.Error409Conflict("No se puede eliminar una reserva en curso")
	}

	if err := db.Unscoped().Delete(&reservation).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete reservation")
	}

	return nil, nil
}

func (h *ReservationHandler) HandleCheckIn(ctx context.Context, input *ReservationIDInput) (*ReservationOutput, error) {
	return h.transition(ctx, input.ID, models.ReservationEnCurso)
}

func (h *ReservationHandler) HandleCheckOut(ctx context.Context, input *ReservationIDInput) (*ReservationOutput, error) {
	return h.transition(ctx, input.ID, models.ReservationFinalizada)
}

func (h *ReservationHandler) HandleSetStatus(ctx context.Context, input *SetReservationStatusInput) (*ReservationOutput, error) {
	status, ok := models.ReservationStatuses.Name(input.Code)
	if !ok {
		return nil, huma.Error422UnprocessableEntity(fmt.Sprintf("Estado de reserva desconocido: %d", input.Code))
	}
	return h.transition(ctx, input.ID, status)
}

func (h *ReservationHandler) transition(ctx context.Context, id uint, to string) (*ReservationOutput, error) {
	var reservation database.Reservation

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Guest").Preload("Room").First(&reservation, id).Error; err != nil {
			return notFoundOr500(err, "Reserva no encontrada")
		}
		if !canTransition(reservation.Status, to) {
			return huma.Error409Conflict(fmt.Sprintf("La reserva no puede pasar de %s a %s",
				models.ReservationStatuses.Label(reservation.Status),
				models.ReservationStatuses.Label(to)))
		}

		reservation.Status = to
		if err := tx.Model(&reservation).Update("status", to).Error; err != nil {
			return err
		}

		if roomStatus, ok := roomStatusAfter[to]; ok {
			reservation.Room.Status = roomStatus
			if err := tx.Model(&reservation.Room).Update("status", roomStatus).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, asStatusError(err, "Failed to update reservation status")
	}

	return &ReservationOutput{Body: reservation.Record()}, nil
}

// applyReservationRequest validates the request against the stored guest,
// room and the room's other stays, and copies it onto reservation with the
// computed nights and total.
func applyReservationRequest(tx *gorm.DB, reservation *database.Reservation, req models.ReservationRequest) error {
	checkIn, err := models.ParseDate(req.CheckIn)
	if err != nil {
		return fieldError("fechaEntrada", "Fecha inválida")
	}
	checkOut, err := models.ParseDate(req.CheckOut)
	if err != nil {
		return fieldError("fechaSalida", "Fecha inválida")
	}
	if !checkOut.After(checkIn) {
		return fieldError("fechaSalida", "La fecha de salida debe ser posterior a la fecha de entrada")
	}

	var guest database.Guest
	if err := tx.First(&guest, req.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fieldError("idHuesped", "El huésped no existe")
		}
		return err
	}

	var room database.Room
	if err := tx.First(&room, req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fieldError("idHabitacion", "La habitación no existe")
		}
		return err
	}

	var overlapping int64
	err = tx.Model(&database.Reservation{}).
		Where("room_id = ? AND id <> ? AND status IN ?", room.ID, reservation.ID, staysBlocking).
		Where("check_in < ? AND check_out > ?", checkOut.Time(), checkIn.Time()).
		Count(&overlapping).Error
	if err != nil {
		return err
	}
	if overlapping > 0 {
		return huma.Error409Conflict(fmt.Sprintf("La habitación %s ya está reservada en esas fechas", room.Number))
	}

	reservation.GuestID = guest.ID
	reservation.Guest = guest
	reservation.RoomID = room.ID
	reservation.Room = room
	reservation.CheckIn = checkIn.Time()
	reservation.CheckOut = checkOut.Time()
	reservation.Nights, reservation.Total = stayPrice(checkIn, checkOut, room.PricePerNight)
	return nil
}

func asStatusError(err error, fallback string) error {
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	return huma.Error500InternalServerError(fallback)
}
