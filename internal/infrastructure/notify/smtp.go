package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/pkg/config"
)

// sender abstrae el envío para poder probar la composición de mensajes sin servidor.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier envía los avisos como correo de texto plano.
type SMTPNotifier struct {
	from   string
	dialer sender
}

var _ notification.Notifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier crea el notificador SMTP a partir de la configuración.
func NewSMTPNotifier(cfg config.NotifierConfig) *SMTPNotifier {
	return &SMTPNotifier{
		from:   cfg.SMTPFrom,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// NotifyActivation envía el correo de activación de cuenta.
func (n *SMTPNotifier) NotifyActivation(ctx context.Context, a notification.ActivationNotice) error {
	return n.send(ctx, activationMessage(n.from, a))
}

// NotifyBookingToEmployee envía la confirmación de reserva al empleado.
func (n *SMTPNotifier) NotifyBookingToEmployee(ctx context.Context, b notification.BookingEmployeeNotice) error {
	return n.send(ctx, bookingEmployeeMessage(n.from, b))
}

// NotifyBookingToCoworking envía el aviso de reserva al coworking.
func (n *SMTPNotifier) NotifyBookingToCoworking(ctx context.Context, b notification.BookingCoworkingNotice) error {
	return n.send(ctx, bookingCoworkingMessage(n.from, b))
}

// send respeta la cancelación: gomail no acepta contexto, así que se corre en una goroutine.
func (n *SMTPNotifier) send(ctx context.Context, m *gomail.Message) error {
	done := make(chan error, 1)
	go func() { done <- n.dialer.DialAndSend(m) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}

func activationMessage(from string, a notification.ActivationNotice) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", a.Email)
	m.SetHeader("Subject", "Bienvenido a Coco: "+a.CompanyName)
	m.SetBody("text/plain", fmt.Sprintf(
		"Hola,\n\nLa cuenta de %s fue activada.\nUsuario: %s\nContraseña temporal: %s\n\nDebes cambiarla en tu primer ingreso.\n",
		a.CompanyName, a.Email, a.Credential,
	))
	return m
}

func bookingEmployeeMessage(from string, b notification.BookingEmployeeNotice) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", b.UserEmail)
	m.SetHeader("Subject", "Reserva registrada en "+b.CoworkingName)
	m.SetBody("text/plain", fmt.Sprintf(
		"Hola %s,\n\nTu reserva en %s quedó registrada para el %s a las %s.\nDirección: %s\n",
		b.UserName, b.CoworkingName, b.Date, b.Time, b.Address,
	))
	return m
}

func bookingCoworkingMessage(from string, b notification.BookingCoworkingNotice) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", b.CoworkingEmail)
	m.SetHeader("Subject", "Nueva reserva en "+b.CoworkingName)
	m.SetBody("text/plain", fmt.Sprintf(
		"%s %s reservó un puesto para el %s a las %s.\n",
		b.UserName, b.UserLastname, b.Date, b.Time,
	))
	return m
}
