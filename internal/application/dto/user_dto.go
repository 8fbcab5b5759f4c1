package dto

import (
	"time"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Lastname           string    `json:"lastname"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Identification     string    `json:"identification"`
	Position           string    `json:"position"`
	Status             string    `json:"status"`
	Role               string    `json:"role"`
	MustChangePassword bool      `json:"mustChangePassword"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// UpdateUserRequest cambios que un admin de empresa puede aplicar a un empleado.
type UpdateUserRequest struct {
	Name           *string `json:"name"`
	Lastname       *string `json:"lastname"`
	Phone          *string `json:"phone"`
	Identification *string `json:"identification"`
	Position       *string `json:"position"`
	Status         *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ProvisionEmployeeRequest alta de un empleado bajo una empresa existente.
// PassesAvailable nil equivale a Passes.
type ProvisionEmployeeRequest struct {
	CompanyID       string `json:"companyId" validate:"required,uuid"`
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required"`
	Lastname        string `json:"lastname"`
	Phone           string `json:"phone"`
	Identification  string `json:"identification"`
	Position        string `json:"position"`
	Passes          int    `json:"passes" validate:"min=0"`
	PassesAvailable *int   `json:"passesAvailable"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest cambio de contraseña del propio usuario.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// FromUser mapea la entidad a la respuesta pública.
func FromUser(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Lastname:           u.Lastname,
		Email:              u.Email,
		Phone:              u.Phone,
		Identification:     u.Identification,
		Position:           u.Position,
		Status:             string(u.Status),
		Role:               string(u.Role),
		MustChangePassword: u.MustChangePassword,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
