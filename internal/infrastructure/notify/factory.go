package notify

import (
	"fmt"
	"io"

	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/pkg/config"
	"github.com/jhoicas/coco-api/pkg/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New construye el Notifier según cfg.Driver. El io.Closer libera la conexión (solo amqp).
func New(cfg config.NotifierConfig, log *logger.Logger) (notification.Notifier, io.Closer, error) {
	switch cfg.Driver {
	case "", "log":
		return NewLogNotifier(log), nopCloser{}, nil
	case "amqp":
		n, err := NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			return nil, nil, err
		}
		return n, n, nil
	case "smtp":
		return NewSMTPNotifier(cfg), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("notify: driver %q no soportado", cfg.Driver)
	}
}
