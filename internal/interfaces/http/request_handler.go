package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// RequestHandler recibe solicitudes de alta y las expone a los administradores.
type RequestHandler struct {
	uc *onboarding.RequestUseCase
}

func NewRequestHandler(uc *onboarding.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// SubmitCompany godoc
// @Summary      Solicitar alta de empresa
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitRequest  true  "datos de contacto"
// @Success      201   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requests/company [post]
func (h *RequestHandler) SubmitCompany(c *fiber.Ctx) error {
	return h.submit(c, entity.RequestKindCompany)
}

// SubmitCoworking godoc
// @Summary      Solicitar alta de coworking
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitRequest  true  "datos de contacto"
// @Success      201   {object}  dto.RequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requests/coworking [post]
func (h *RequestHandler) SubmitCoworking(c *fiber.Ctx) error {
	return h.submit(c, entity.RequestKindCoworking)
}

func (h *RequestHandler) submit(c *fiber.Ctx, kind entity.RequestKind) error {
	var in dto.SubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.uc.Submit(c.UserContext(), kind, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.RequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requests/{id} [get]
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "PENDING | CLOSED"
// @Param        kind    query  string  false  "COMPANY | COWORKING"
// @Param        page    query  int     false  "Página (1..n)"  default(1)
// @Param        limit   query  int     false  "Límite"         default(10)
// @Success      200     {object}  dto.RequestListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	filter := entity.RequestFilter{
		Status: entity.RequestStatus(c.Query("status")),
		Kind:   entity.RequestKind(c.Query("kind")),
	}
	out, err := h.uc.List(c.UserContext(), filter, pageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// pageFrom lee page/limit; ausentes toman 1 y dto.DefaultLimit. La validación la hace el caso de uso.
func pageFrom(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", dto.DefaultLimit),
	}
}
