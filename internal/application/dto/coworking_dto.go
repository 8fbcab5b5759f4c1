package dto

import (
	"time"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// CreateCoworkingRequest alta directa de un coworking.
type CreateCoworkingRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Open    string `json:"open" validate:"required"`
	Close   string `json:"close" validate:"required"`
}

// UpdateCoworkingRequest cambios parciales de un coworking.
type UpdateCoworkingRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Open    *string `json:"open"`
	Close   *string `json:"close"`
	Status  *string `json:"status" validate:"omitempty,oneof=PENDING ACTIVE INACTIVE"`
}

// ActivateCoworkingRequest activación de una solicitud de operador de coworking.
type ActivateCoworkingRequest struct {
	ID      string `json:"id" validate:"required,uuid"`
	Address string `json:"address" validate:"required"`
	Open    string `json:"open" validate:"required"`
	Close   string `json:"close" validate:"required"`
}

// CoworkingResponse salida de un coworking.
type CoworkingResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Open      string    `json:"open"`
	Close     string    `json:"close"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CoworkingListResponse lista paginada de coworkings.
type CoworkingListResponse struct {
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Total      int                 `json:"total"`
	Coworkings []CoworkingResponse `json:"coworkings"`
}

// FromCoworking mapea la entidad a la respuesta.
func FromCoworking(c *entity.Coworking) *CoworkingResponse {
	if c == nil {
		return nil
	}
	return &CoworkingResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		Open:      c.Open,
		Close:     c.Close,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
