package entity

import "time"

// RequestKind tipo de solicitud de alta.
type RequestKind string

const (
	RequestKindCoworking RequestKind = "COWORKING"
	RequestKindCompany   RequestKind = "COMPANY"
)

// RequestStatus ciclo de vida de una solicitud: PENDING -> CLOSED.
type RequestStatus string

const (
	RequestStatusPending RequestStatus = "PENDING"
	RequestStatusClosed  RequestStatus = "CLOSED"
)

// Request solicitud de alta de una empresa o de un operador de coworking.
// Solo la modifican los flujos de activación; nunca se elimina.
type Request struct {
	ID          string
	Kind        RequestKind
	Email       string // normalizado; único entre solicitudes PENDING
	CompanyName string
	Name        string
	Lastname    string
	Phone       string
	Position    string
	Size        string
	Status      RequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RequestFilter filtros del listado de solicitudes.
type RequestFilter struct {
	Status RequestStatus
	Kind   RequestKind
}
