package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/coco-api/internal/application/notification"
)

// Tipos de mensaje publicados en el header "type".
const (
	TypeActivation       = "activation"
	TypeBookingEmployee  = "booking.employee"
	TypeBookingCoworking = "booking.coworking"
)

// AMQPNotifier publica cada aviso como JSON persistente en una cola durable.
// Un worker externo consume la cola y hace la entrega final.
type AMQPNotifier struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

var _ notification.Notifier = (*AMQPNotifier)(nil)

// NewAMQPNotifier conecta al broker y declara la cola (idempotente).
func NewAMQPNotifier(uri, queue string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp declare %s: %w", queue, err)
	}
	return &AMQPNotifier{conn: conn, ch: ch, queue: queue}, nil
}

// NotifyActivation publica el aviso de activación de cuenta.
func (n *AMQPNotifier) NotifyActivation(ctx context.Context, a notification.ActivationNotice) error {
	return n.publish(ctx, TypeActivation, a)
}

// NotifyBookingToEmployee publica la confirmación de reserva para el empleado.
func (n *AMQPNotifier) NotifyBookingToEmployee(ctx context.Context, b notification.BookingEmployeeNotice) error {
	return n.publish(ctx, TypeBookingEmployee, b)
}

// NotifyBookingToCoworking publica el aviso de reserva para el coworking.
func (n *AMQPNotifier) NotifyBookingToCoworking(ctx context.Context, b notification.BookingCoworkingNotice) error {
	return n.publish(ctx, TypeBookingCoworking, b)
}

func (n *AMQPNotifier) publish(ctx context.Context, kind string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("amqp marshal %s: %w", kind, err)
	}
	err = n.ch.PublishWithContext(
		ctx,
		"",      // exchange por defecto
		n.queue, // routing key = nombre de la cola
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Type:         kind,
			Body:         body,
			Headers:      amqp.Table{"type": kind},
		},
	)
	if err != nil {
		return fmt.Errorf("amqp publish %s: %w", kind, err)
	}
	return nil
}

// Close cierra canal y conexión.
func (n *AMQPNotifier) Close() error {
	var errCh, errConn error
	if n.ch != nil {
		errCh = n.ch.Close()
	}
	if n.conn != nil {
		errConn = n.conn.Close()
	}
	return errors.Join(errCh, errConn)
}
