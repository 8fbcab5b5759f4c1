package dto

import (
	"time"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// CreateBookingRequest reserva solicitada por el usuario autenticado.
type CreateBookingRequest struct {
	CoworkingID     string `json:"coworkingId" validate:"required,uuid"`
	ReservationDate string `json:"reservationDate" validate:"required"` // YYYY-MM-DD
	ReservationTime string `json:"reservationTime" validate:"required"` // HH:MM
}

// UpdateBookingRequest cambios parciales (merge) de una reserva.
type UpdateBookingRequest struct {
	ReservationDate *string `json:"reservationDate"`
	ReservationTime *string `json:"reservationTime"`
	Status          *string `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
}

// BookingResponse salida de una reserva.
type BookingResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	CoworkingID     string    `json:"coworkingId"`
	ReservationDate string    `json:"reservationDate"`
	ReservationTime string    `json:"reservationTime"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookingListResponse lista paginada de reservas.
type BookingListResponse struct {
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int               `json:"total"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromBooking mapea la entidad a la respuesta.
func FromBooking(b *entity.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		CoworkingID:     b.CoworkingID,
		ReservationDate: b.ReservationDate.Format(entity.DateLayout),
		ReservationTime: b.ReservationTime,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
