// Package booking implementa el control de admisión de reservas: una reserva solo se acepta si
// su hora cae dentro del horario del coworking (límites inclusivos).
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
	"github.com/jhoicas/coco-api/internal/domain/schedule"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// UseCase casos de uso de reservas.
type UseCase struct {
	bookings   repository.BookingRepository
	users      repository.UserRepository
	coworkings repository.CoworkingRepository
	dispatcher *notification.Dispatcher
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	bookings repository.BookingRepository,
	users repository.UserRepository,
	coworkings repository.CoworkingRepository,
	dispatcher *notification.Dispatcher,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		bookings:   bookings,
		users:      users,
		coworkings: coworkings,
		dispatcher: dispatcher,
		log:        log.Component("booking"),
	}
}

// Create registra una reserva PENDING del usuario y avisa al usuario y al coworking.
// Errores: ErrNotFound (usuario o coworking), ErrOutOfHours, ErrInvalidInput (fecha u hora mal formadas).
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, userID)
	}
	cw, err := uc.coworkings.GetByID(ctx, in.CoworkingID)
	if err != nil {
		return nil, err
	}
	if cw == nil {
		return nil, fmt.Errorf("%w: coworking %s", domain.ErrNotFound, in.CoworkingID)
	}

	window, err := schedule.NewWindow(cw.Open, cw.Close)
	if err != nil {
		return nil, fmt.Errorf("horario del coworking %s: %w", cw.ID, err)
	}
	if err := window.Admit(in.ReservationTime); err != nil {
		return nil, err
	}
	clock, _ := schedule.Normalize(in.ReservationTime)
	date, err := parseDate(in.ReservationDate)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &entity.Booking{
		ID:              uuid.New().String(),
		UserID:          user.ID,
		CoworkingID:     cw.ID,
		ReservationDate: date,
		ReservationTime: clock,
		Status:          entity.BookingStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	uc.log.Info().Str("booking_id", b.ID).Str("coworking_id", cw.ID).Str("user_id", user.ID).Msg("reserva creada")

	day := date.Format(entity.DateLayout)
	uc.dispatcher.BookingToCoworking(ctx, notification.BookingCoworkingNotice{
		CoworkingName:  cw.Name,
		UserName:       user.Name,
		UserLastname:   user.Lastname,
		Date:           day,
		Time:           clock,
		CoworkingEmail: cw.Email,
	})
	uc.dispatcher.BookingToEmployee(ctx, notification.BookingEmployeeNotice{
		CoworkingName: cw.Name,
		UserName:      user.Name,
		UserEmail:     user.Email,
		Date:          day,
		Time:          clock,
		Address:       cw.Address,
	})
	return dto.FromBooking(b), nil
}

// Update aplica un merge de fecha, hora y estado. La hora solo se valida en formato:
// el horario del coworking se comprueba únicamente al crear la reserva.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	b, err := uc.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: reserva %s", domain.ErrNotFound, id)
	}
	if in.ReservationDate != nil {
		date, err := parseDate(*in.ReservationDate)
		if err != nil {
			return nil, err
		}
		b.ReservationDate = date
	}
	if in.ReservationTime != nil {
		clock, err := schedule.Normalize(*in.ReservationTime)
		if err != nil {
			return nil, err
		}
		b.ReservationTime = clock
	}
	if in.Status != nil {
		status := entity.BookingStatus(*in.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: estado de reserva %q", domain.ErrInvalidInput, *in.Status)
		}
		b.Status = status
	}
	b.UpdatedAt = time.Now().UTC()
	if err := uc.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return dto.FromBooking(b), nil
}

// GetByID obtiene una reserva. ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.BookingResponse, error) {
	b, err := uc.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: reserva %s", domain.ErrNotFound, id)
	}
	return dto.FromBooking(b), nil
}

// List reservas paginadas; userID vacío lista todas.
func (uc *UseCase) List(ctx context.Context, userID string, page dto.PageRequest) (*dto.BookingListResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	list, total, err := uc.bookings.List(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *dto.FromBooking(b))
	}
	return &dto.BookingListResponse{Page: page.Page, Limit: page.Limit, Total: total, Bookings: items}, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, se espera YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return d, nil
}
