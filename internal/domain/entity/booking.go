package entity

import "time"

// BookingStatus estado de una reserva.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Valid informa si el estado es uno de los conocidos.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// DateLayout formato de ReservationDate en la API y en las notificaciones.
const DateLayout = "2006-01-02"

// Booking reserva de un usuario en un coworking. La hora se valida contra el horario
// solo al crear la reserva.
type Booking struct {
	ID              string
	UserID          string
	CoworkingID     string
	ReservationDate time.Time // solo fecha (UTC, medianoche)
	ReservationTime string    // "HH:MM"
	Status          BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
