package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/application/usecase"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// CompanyHandler directorio de empresas, activación y gestión de empleados.
type CompanyHandler struct {
	companies  *usecase.CompanyUseCase
	users      *usecase.UserUseCase
	activation *onboarding.ActivationUseCase
	provision  *onboarding.ProvisionUseCase
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(companies *usecase.CompanyUseCase, users *usecase.UserUseCase, activation *onboarding.ActivationUseCase, provision *onboarding.ProvisionUseCase) *CompanyHandler {
	return &CompanyHandler{companies: companies, users: users, activation: activation, provision: provision}
}

// Activate godoc
// @Summary      Activar solicitud de empresa
// @Description  Crea empresa, usuario administrador y membresía en una sola transacción y cierra la solicitud.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ActivateRequest  true  "ID de la solicitud"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies/activate [post]
func (h *CompanyHandler) Activate(c *fiber.Ctx) error {
	var in dto.ActivateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	if in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id es requerido"})
	}
	out, err := h.activation.Activate(c.UserContext(), in.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "PENDING | ACCEPTED"
// @Param        name    query  string  false  "Nombre exacto"
// @Param        page    query  int     false  "Página (1..n)"  default(1)
// @Param        limit   query  int     false  "Límite"         default(10)
// @Success      200     {object}  dto.CompanyListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	filter := entity.CompanyFilter{
		Status: entity.CompanyStatus(c.Query("status")),
		Name:   c.Query("name"),
	}
	out, err := h.companies.List(c.UserContext(), filter, pageFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa con sus empleados
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireCompanyScope(c, id); err != nil {
		return err
	}
	out, err := h.companies.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "campos a modificar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireCompanyScope(c, id); err != nil {
		return err
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.companies.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ProvisionEmployee godoc
// @Summary      Dar de alta un empleado
// @Description  companyId por defecto es la empresa del token.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ProvisionEmployeeRequest  true  "datos del empleado"
// @Success      201   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies/employees [post]
func (h *CompanyHandler) ProvisionEmployee(c *fiber.Ctx) error {
	var in dto.ProvisionEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	if in.CompanyID == "" {
		in.CompanyID = GetCompanyID(c)
	}
	out, err := h.provision.Provision(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEmployeeUser godoc
// @Summary      Actualizar datos de un empleado
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string                 true  "ID de la empresa"
// @Param        userId  path  string                 true  "ID del usuario"
// @Param        body    body  dto.UpdateUserRequest  true  "campos a modificar"
// @Success      200     {object}  dto.UserResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/users/{userId} [put]
func (h *CompanyHandler) UpdateEmployeeUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.users.UpdateEmployeeUser(c.UserContext(), GetUserID(c), c.Params("id"), c.Params("userId"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// requireCompanyScope SUPERADMIN ve cualquier empresa; el resto solo la propia.
func requireCompanyScope(c *fiber.Ctx, companyID string) error {
	if GetRole(c) == entity.RoleSuperAdmin || GetCompanyID(c) == companyID {
		return nil
	}
	return fmt.Errorf("%w: empresa %s fuera del alcance del usuario", domain.ErrForbidden, companyID)
}
