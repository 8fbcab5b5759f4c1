package entity

import "time"

// CoworkingStatus estado de publicación de un coworking.
type CoworkingStatus string

const (
	CoworkingStatusPending  CoworkingStatus = "PENDING"
	CoworkingStatusActive   CoworkingStatus = "ACTIVE"
	CoworkingStatusInactive CoworkingStatus = "INACTIVE"
)

// Coworking sede con horario de atención dentro de un mismo día (Open <= Close).
type Coworking struct {
	ID        string
	Name      string
	Address   string
	Email     string
	Phone     string
	Open      string // "HH:MM", reloj de 24 horas
	Close     string // "HH:MM"
	Status    CoworkingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
