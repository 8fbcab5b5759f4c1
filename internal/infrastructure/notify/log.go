// Package notify implementa notification.Notifier sobre los canales soportados:
// log estructurado, cola AMQP y correo SMTP.
package notify

import (
	"context"

	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// LogNotifier registra cada aviso en el log. Útil en desarrollo y con el driver memory.
// La credencial inicial nunca se escribe: solo su longitud.
type LogNotifier struct {
	log *logger.Logger
}

var _ notification.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Component("notify.log")}
}

func (n *LogNotifier) NotifyActivation(_ context.Context, a notification.ActivationNotice) error {
	n.log.Info().
		Str("to", a.Email).
		Str("company", a.CompanyName).
		Int("credential_len", len(a.Credential)).
		Msg("activation notice")
	return nil
}

func (n *LogNotifier) NotifyBookingToEmployee(_ context.Context, b notification.BookingEmployeeNotice) error {
	n.log.Info().
		Str("to", b.UserEmail).
		Str("coworking", b.CoworkingName).
		Str("date", b.Date).
		Str("time", b.Time).
		Msg("booking notice to employee")
	return nil
}

func (n *LogNotifier) NotifyBookingToCoworking(_ context.Context, b notification.BookingCoworkingNotice) error {
	n.log.Info().
		Str("to", b.CoworkingEmail).
		Str("user", b.UserName+" "+b.UserLastname).
		Str("date", b.Date).
		Str("time", b.Time).
		Msg("booking notice to coworking")
	return nil
}
