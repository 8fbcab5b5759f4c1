package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo reservas en memoria.
type BookingRepo struct {
	sc scope
}

// Create inserta una reserva.
func (r *BookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return r.sc.do(ctx, func(st *state) error {
		if _, ok := st.bookings[booking.ID]; ok {
			return fmt.Errorf("insert booking: %w", domain.ErrConflict)
		}
		st.bookings[booking.ID] = *booking
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	var out *entity.Booking
	err := r.sc.do(ctx, func(st *state) error {
		if b, ok := st.bookings[id]; ok {
			out = &b
		}
		return nil
	})
	return out, err
}

// Update reemplaza la reserva.
func (r *BookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	return r.sc.do(ctx, func(st *state) error {
		current, ok := st.bookings[booking.ID]
		if !ok {
			return fmt.Errorf("update booking %s: %w", booking.ID, domain.ErrNotFound)
		}
		updated := *booking
		updated.CreatedAt = current.CreatedAt
		st.bookings[booking.ID] = updated
		return nil
	})
}

// List filtra por usuario si userID no está vacío; reservation_date DESC.
func (r *BookingRepo) List(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, int, error) {
	var (
		out   []*entity.Booking
		total int
	)
	err := r.sc.do(ctx, func(st *state) error {
		all := make([]*entity.Booking, 0, len(st.bookings))
		for _, b := range st.bookings {
			if userID != "" && b.UserID != userID {
				continue
			}
			b := b
			all = append(all, &b)
		}
		sort.Slice(all, func(i, j int) bool {
			if !all[i].ReservationDate.Equal(all[j].ReservationDate) {
				return all[i].ReservationDate.After(all[j].ReservationDate)
			}
			if all[i].ReservationTime != all[j].ReservationTime {
				return all[i].ReservationTime > all[j].ReservationTime
			}
			return all[i].ID < all[j].ID
		})
		total = len(all)
		out = paginate(all, limit, offset)
		return nil
	})
	return out, total, err
}
