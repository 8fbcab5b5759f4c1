package entity

import "time"

// Role determina el alcance de autorización del usuario.
type Role string

const (
	RoleSuperAdmin     Role = "SUPERADMIN"
	RoleAdminCompany   Role = "ADMIN_COMPANY"
	RoleEmployee       Role = "EMPLOYEE"
	RoleAdminCoworking Role = "ADMIN_COWORKING"
)

// Valid informa si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdminCompany, RoleEmployee, RoleAdminCoworking:
		return true
	}
	return false
}

// UserStatus estado de la cuenta.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

// User representa una cuenta del sistema. El email es único (sin distinguir mayúsculas) e inmutable.
type User struct {
	ID                 string
	Name               string
	Lastname           string
	Email              string
	Phone              string
	Identification     string
	Position           string
	PasswordHash       string // bcrypt
	MustChangePassword bool   // credencial inicial entregada por correo; se exige cambio al primer uso
	Status             UserStatus
	Role               Role
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
