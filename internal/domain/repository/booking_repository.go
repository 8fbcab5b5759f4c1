package repository

import (
	"context"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// BookingRepository define el puerto de persistencia para Booking.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	// List filtra por usuario si userID no está vacío; orden reservation_date DESC.
	List(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, int, error)
}
