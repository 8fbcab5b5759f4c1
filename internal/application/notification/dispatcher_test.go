package notification_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/pkg/logger"
)

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) NotifyActivation(ctx context.Context, n notification.ActivationNotice) error {
	return m.Called(n).Error(0)
}

func (m *notifierMock) NotifyBookingToEmployee(ctx context.Context, n notification.BookingEmployeeNotice) error {
	return m.Called(n).Error(0)
}

func (m *notifierMock) NotifyBookingToCoworking(ctx context.Context, n notification.BookingCoworkingNotice) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return m.Called(n).Error(0)
}

func TestDispatcher_EnviaYEspera(t *testing.T) {
	n := &notifierMock{}
	notice := notification.ActivationNotice{Email: "a@co.com", CompanyName: "Acme", Credential: "secreto"}
	n.On("NotifyActivation", notice).Return(nil).Once()

	d := notification.NewDispatcher(n, logger.Nop(), 0)
	d.Activation(context.Background(), notice)
	d.Wait()

	n.AssertExpectations(t)
}

func TestDispatcher_ErrorSeRegistraSinCredencial(t *testing.T) {
	var buf bytes.Buffer
	n := &notifierMock{}
	n.On("NotifyActivation", mock.Anything).Return(errors.New("smtp caído"))

	d := notification.NewDispatcher(n, logger.FromWriter(&buf), 0)
	d.Activation(context.Background(), notification.ActivationNotice{Email: "a@co.com", Credential: "NoDebeAparecer"})
	d.Wait()

	out := buf.String()
	assert.Contains(t, out, "smtp caído")
	assert.Contains(t, out, "a@co.com")
	assert.NotContains(t, out, "NoDebeAparecer")
}

// La cancelación del request no debe abortar el envío que ya se despachó.
func TestDispatcher_ContextoDesacoplado(t *testing.T) {
	n := &notifierMock{}
	notice := notification.BookingCoworkingNotice{CoworkingName: "Centro", CoworkingEmail: "c@cw.com"}
	n.On("NotifyBookingToCoworking", notice).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := notification.NewDispatcher(n, logger.Nop(), 0)
	d.BookingToCoworking(ctx, notice)
	d.Wait()

	n.AssertExpectations(t)
}

type panicNotifier struct{ notifierMock }

func (p *panicNotifier) NotifyBookingToEmployee(context.Context, notification.BookingEmployeeNotice) error {
	panic("boom")
}

func TestDispatcher_PanicNoPropaga(t *testing.T) {
	d := notification.NewDispatcher(&panicNotifier{}, logger.Nop(), 0)
	assert.NotPanics(t, func() {
		d.BookingToEmployee(context.Background(), notification.BookingEmployeeNotice{})
		d.Wait()
	})
}
