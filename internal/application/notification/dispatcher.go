package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/coco-api/pkg/logger"
)

// DefaultTimeout tiempo máximo de cada envío si no se configura otro.
const DefaultTimeout = 10 * time.Second

// Dispatcher envía notificaciones en segundo plano (fire-and-forget).
// Nunca devuelve error al llamador: los fallos y pánicos del Notifier se registran y se descartan.
// El contexto de cada envío se desacopla de la cancelación del request que lo originó.
type Dispatcher struct {
	notifier Notifier
	log      *logger.Logger
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewDispatcher construye el despachador. timeout <= 0 usa DefaultTimeout.
func NewDispatcher(n Notifier, log *logger.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{notifier: n, log: log.Component("notification"), timeout: timeout}
}

// Activation envía la credencial inicial. El texto plano no se registra en logs.
func (d *Dispatcher) Activation(ctx context.Context, n ActivationNotice) {
	d.dispatch(ctx, "activation", n.Email, func(ctx context.Context) error {
		return d.notifier.NotifyActivation(ctx, n)
	})
}

// BookingToEmployee avisa al usuario que hizo la reserva.
func (d *Dispatcher) BookingToEmployee(ctx context.Context, n BookingEmployeeNotice) {
	d.dispatch(ctx, "booking_employee", n.UserEmail, func(ctx context.Context) error {
		return d.notifier.NotifyBookingToEmployee(ctx, n)
	})
}

// BookingToCoworking avisa al coworking de la reserva.
func (d *Dispatcher) BookingToCoworking(ctx context.Context, n BookingCoworkingNotice) {
	d.dispatch(ctx, "booking_coworking", n.CoworkingEmail, func(ctx context.Context) error {
		return d.notifier.NotifyBookingToCoworking(ctx, n)
	})
}

// Wait bloquea hasta que terminen los envíos en curso (apagado ordenado y tests).
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(parent context.Context, kind, to string, send func(context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), d.timeout)
		defer cancel()

		err := safeSend(ctx, send)
		if err != nil {
			d.log.Error().Err(err).Str("kind", kind).Str("to", to).Msg("notificación no enviada")
			return
		}
		d.log.Debug().Str("kind", kind).Str("to", to).Msg("notificación enviada")
	}()
}

func safeSend(ctx context.Context, send func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic en notifier: %v", r)
		}
	}()
	return send(ctx)
}
