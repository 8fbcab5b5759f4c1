package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/application/usecase"
	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// CoworkingHandler directorio de coworkings y su activación.
type CoworkingHandler struct {
	uc         *usecase.CoworkingUseCase
	activation *onboarding.ActivationUseCase
}

func NewCoworkingHandler(uc *usecase.CoworkingUseCase, activation *onboarding.ActivationUseCase) *CoworkingHandler {
	return &CoworkingHandler{uc: uc, activation: activation}
}

// Create godoc
// @Summary      Crear coworking
// @Tags         coworkings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCoworkingRequest  true  "datos del coworking"
// @Success      201   {object}  dto.CoworkingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/coworkings [post]
func (h *CoworkingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCoworkingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Activate godoc
// @Summary      Activar solicitud de coworking
// @Description  Crea el coworking ACTIVE y su usuario ADMIN_COWORKING en una sola transacción.
// @Tags         coworkings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ActivateCoworkingRequest  true  "solicitud y horario"
// @Success      201   {object}  dto.CoworkingResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/coworkings/activate [post]
func (h *CoworkingHandler) Activate(c *fiber.Ctx) error {
	var in dto.ActivateCoworkingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.activation.ActivateCoworking(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener coworking
// @Tags         coworkings
// @Produce      json
// @Param        id   path  string  true  "ID del coworking"
// @Success      200  {object}  dto.CoworkingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/coworkings/{id} [get]
func (h *CoworkingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar coworkings
// @Tags         coworkings
// @Produce      json
// @Param        status  query  string  false  "PENDING | ACTIVE | INACTIVE"
// @Param        page    query  int     false  "Página (1..n)"  default(1)
// @Param        limit   query  int     false  "Límite"         default(10)
// @Success      200     {object}  dto.CoworkingListResponse
// @Router       /api/coworkings [get]
func (h *CoworkingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), entity.CoworkingStatus(c.Query("status")), pageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar coworking
// @Tags         coworkings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID del coworking"
// @Param        body  body  dto.UpdateCoworkingRequest  true  "campos a modificar"
// @Success      200   {object}  dto.CoworkingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/coworkings/{id} [put]
func (h *CoworkingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCoworkingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
