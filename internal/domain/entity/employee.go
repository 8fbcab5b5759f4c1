package entity

import "time"

// Employee vincula un User con una Company y lleva su asignación de pases.
// Solo guarda identificadores; las vistas con el usuario se arman con un índice explícito.
type Employee struct {
	ID              string
	UserID          string // 1:1, único
	CompanyID       string
	Passes          int
	PassesAvailable int // siempre <= Passes
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidPasses verifica 0 <= PassesAvailable <= Passes.
func (e *Employee) ValidPasses() bool {
	return e.Passes >= 0 && e.PassesAvailable >= 0 && e.PassesAvailable <= e.Passes
}

// EmployeeMember empleado con su usuario resuelto (vista de lectura).
type EmployeeMember struct {
	Employee *Employee
	User     *User
}
