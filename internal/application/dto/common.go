package dto

import (
	"fmt"
	"math"

	"github.com/jhoicas/coco-api/internal/domain"
)

// Límites de paginación.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest paginación 1-indexada para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Validate exige page y limit positivos; limit se acota a MaxLimit y el
// desplazamiento resultante debe caber en un int.
func (p *PageRequest) Validate() error {
	if p.Page <= 0 || p.Limit <= 0 {
		return fmt.Errorf("%w: page y limit deben ser enteros positivos", domain.ErrInvalidInput)
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return fmt.Errorf("%w: page fuera de rango", domain.ErrInvalidInput)
	}
	return nil
}

// Offset desplazamiento equivalente a la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
