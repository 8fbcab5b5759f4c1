package dto

import (
	"time"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// SubmitRequest solicitud de alta enviada por una empresa o un operador de coworking.
type SubmitRequest struct {
	Email       string `json:"email" validate:"required,email"`
	CompanyName string `json:"companyName" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Lastname    string `json:"lastname"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Size        string `json:"size"`
}

// RequestResponse salida de una solicitud.
type RequestResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	Name        string    `json:"name"`
	Lastname    string    `json:"lastname"`
	Phone       string    `json:"phone"`
	Position    string    `json:"position"`
	Size        string    `json:"size"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RequestListResponse lista paginada de solicitudes.
type RequestListResponse struct {
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    int               `json:"total"`
	Requests []RequestResponse `json:"requests"`
}

// FromRequest mapea la entidad a la respuesta.
func FromRequest(r *entity.Request) *RequestResponse {
	if r == nil {
		return nil
	}
	return &RequestResponse{
		ID:          r.ID,
		Kind:        string(r.Kind),
		Email:       r.Email,
		CompanyName: r.CompanyName,
		Name:        r.Name,
		Lastname:    r.Lastname,
		Phone:       r.Phone,
		Position:    r.Position,
		Size:        r.Size,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
