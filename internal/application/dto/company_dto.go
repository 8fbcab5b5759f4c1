package dto

import (
	"time"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales, merge).
type UpdateCompanyRequest struct {
	Name                  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone                 *string `json:"phone"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	QuantityBeneficiaries *int    `json:"quantityBeneficiaries" validate:"omitempty,min=0"`
	BusinessSector        *string `json:"businessSector"`
	Size                  *string `json:"size"`
	Status                *string `json:"status" validate:"omitempty,oneof=PENDING ACCEPTED"`
	TotalPasses           *int    `json:"totalPasses" validate:"omitempty,min=0"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	QuantityBeneficiaries int       `json:"quantityBeneficiaries"`
	BusinessSector        string    `json:"businessSector"`
	Size                  string    `json:"size"`
	Status                string    `json:"status"`
	TotalPasses           int       `json:"totalPasses"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// EmployeeResponse empleado con su usuario resuelto.
type EmployeeResponse struct {
	ID              string        `json:"id"`
	Passes          int           `json:"passes"`
	PassesAvailable int           `json:"passesAvailable"`
	User            *UserResponse `json:"user"`
}

// CompanyDetailResponse empresa con sus empleados y el usuario de cada uno.
type CompanyDetailResponse struct {
	CompanyResponse
	Employees []EmployeeResponse `json:"employees"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	Total     int               `json:"total"`
	Companies []CompanyResponse `json:"companies"`
}

// ActivateRequest cuerpo de las rutas de activación.
type ActivateRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// FromCompany mapea la entidad a la respuesta.
func FromCompany(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Phone:                 c.Phone,
		Email:                 c.Email,
		QuantityBeneficiaries: c.QuantityBeneficiaries,
		BusinessSector:        c.BusinessSector,
		Size:                  c.Size,
		Status:                string(c.Status),
		TotalPasses:           c.TotalPasses,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// FromEmployee mapea un empleado y su usuario (puede ser nil si el índice no lo resolvió).
func FromEmployee(e *entity.Employee, u *entity.User) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		Passes:          e.Passes,
		PassesAvailable: e.PassesAvailable,
		User:            FromUser(u),
	}
}
