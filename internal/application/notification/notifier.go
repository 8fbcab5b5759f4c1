// Package notification define el puerto de notificaciones y el despachador asíncrono
// que lo invoca después de confirmar cada transacción.
package notification

import "context"

// ActivationNotice credencial inicial de una cuenta recién creada.
type ActivationNotice struct {
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	Credential  string `json:"credential"`
}

// BookingEmployeeNotice aviso al usuario que reservó.
type BookingEmployeeNotice struct {
	CoworkingName string `json:"coworkingName"`
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Address       string `json:"address"`
}

// BookingCoworkingNotice aviso al coworking sobre una reserva entrante.
type BookingCoworkingNotice struct {
	CoworkingName  string `json:"coworkingName"`
	UserName       string `json:"userName"`
	UserLastname   string `json:"userLastname"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	CoworkingEmail string `json:"coworkingEmail"`
}

// Notifier puerto de envío. Las implementaciones viven en infrastructure/notify.
type Notifier interface {
	NotifyActivation(ctx context.Context, n ActivationNotice) error
	NotifyBookingToEmployee(ctx context.Context, n BookingEmployeeNotice) error
	NotifyBookingToCoworking(ctx context.Context, n BookingCoworkingNotice) error
}
