package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coco-api/internal/application/booking"
	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// BookingHandler reservas del usuario autenticado.
type BookingHandler struct {
	uc *booking.UseCase
}

func NewBookingHandler(uc *booking.UseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Create godoc
// @Summary      Reservar un puesto
// @Description  La hora debe estar dentro del horario del coworking (límites inclusivos).
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateBookingRequest  true  "coworking, fecha y hora"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar reservas propias
// @Description  SUPERADMIN puede filtrar por userId; sin filtro ve todas.
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query  string  false  "solo SUPERADMIN"
// @Param        page    query  int     false  "Página (1..n)"  default(1)
// @Param        limit   query  int     false  "Límite"         default(10)
// @Success      200     {object}  dto.BookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if GetRole(c) == entity.RoleSuperAdmin {
		userID = c.Query("userId")
	}
	out, err := h.uc.List(c.UserContext(), userID, pageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.owned(c, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar reserva
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la reserva"
// @Param        body  body  dto.UpdateBookingRequest  true  "campos a modificar"
// @Success      200   {object}  dto.BookingResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.owned(c, id); err != nil {
		return err
	}
	var in dto.UpdateBookingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	if err := canChangeStatus(GetRole(c), in.Status); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// owned carga la reserva y exige que sea del usuario del token (SUPERADMIN ve todas).
func (h *BookingHandler) owned(c *fiber.Ctx, id string) (*dto.BookingResponse, error) {
	b, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return nil, err
	}
	if GetRole(c) != entity.RoleSuperAdmin && b.UserID != GetUserID(c) {
		return nil, fmt.Errorf("%w: reserva %s de otro usuario", domain.ErrForbidden, id)
	}
	return b, nil
}

// canChangeStatus el dueño solo puede cancelar; confirmar o reabrir queda para
// SUPERADMIN y ADMIN_COWORKING.
func canChangeStatus(role entity.Role, status *string) error {
	if status == nil || entity.BookingStatus(*status) == entity.BookingStatusCancelled {
		return nil
	}
	if role == entity.RoleSuperAdmin || role == entity.RoleAdminCoworking {
		return nil
	}
	return fmt.Errorf("%w: el estado %s requiere rol de administrador", domain.ErrForbidden, *status)
}
