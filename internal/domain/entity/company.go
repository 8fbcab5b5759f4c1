package entity

import "time"

// CompanyStatus estado de una empresa cliente.
type CompanyStatus string

const (
	CompanyStatusPending  CompanyStatus = "PENDING"
	CompanyStatusAccepted CompanyStatus = "ACCEPTED"
)

// Company representa una empresa cliente que compra pases para sus empleados.
type Company struct {
	ID                    string
	Name                  string
	Phone                 string
	Email                 string
	QuantityBeneficiaries int
	BusinessSector        string
	Size                  string // tamaño declarado en la solicitud (SMALL, MEDIUM, LARGE...)
	Status                CompanyStatus
	TotalPasses           int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CompanyFilter filtros del listado de empresas. Campos vacíos no filtran.
type CompanyFilter struct {
	Status CompanyStatus
	Name   string // coincidencia exacta
}
