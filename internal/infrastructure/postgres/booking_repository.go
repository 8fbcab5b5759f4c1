package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

const bookingColumns = `id, user_id, coworking_id, reservation_date, reservation_time, status, created_at, updated_at`

// BookingRepo implementación de BookingRepository sobre PostgreSQL.
type BookingRepo struct {
	q Querier
}

// NewBookingRepository construye el adaptador. Pasar pool o tx.
func NewBookingRepository(q Querier) *BookingRepo {
	return &BookingRepo{q: q}
}

// Create persiste una reserva.
func (r *BookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, b.ID, b.UserID, b.CoworkingID, b.ReservationDate, b.ReservationTime, b.Status, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return wrapWrite("insert booking", err)
	}
	return nil
}

// GetByID obtiene una reserva o (nil, nil).
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	if !validID(id) {
		return nil, nil
	}
	b, err := scanBooking(r.q.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// Update actualiza fecha, hora y estado.
func (r *BookingRepo) Update(ctx context.Context, b *entity.Booking) error {
	query := `
		UPDATE bookings SET reservation_date = $2, reservation_time = $3, status = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, b.ID, b.ReservationDate, b.ReservationTime, b.Status, b.UpdatedAt)
	if err != nil {
		return wrapWrite("update booking", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s: %w", b.ID, domain.ErrNotFound)
	}
	return nil
}

// List reservas, del usuario si userID no está vacío; reservation_date DESC.
func (r *BookingRepo) List(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, int, error) {
	if userID != "" && !validID(userID) {
		return []*entity.Booking{}, 0, nil
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM bookings WHERE ($1 = '' OR user_id::text = $1)`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE ($1 = '' OR user_id::text = $1)
		ORDER BY reservation_date DESC, reservation_time DESC, id LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Booking, 0, limit)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.CoworkingID, &b.ReservationDate, &b.ReservationTime, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
