package onboarding_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
	"github.com/jhoicas/coco-api/internal/infrastructure/memory"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// notifierMock registra las credenciales enviadas para poder verificarlas contra el hash.
type notifierMock struct {
	mock.Mock
	mu    sync.Mutex
	plain map[string]string
}

func (m *notifierMock) NotifyActivation(ctx context.Context, n notification.ActivationNotice) error {
	m.mu.Lock()
	if m.plain == nil {
		m.plain = map[string]string{}
	}
	m.plain[n.Email] = n.Credential
	m.mu.Unlock()
	return m.Called(ctx, n).Error(0)
}

func (m *notifierMock) NotifyBookingToEmployee(ctx context.Context, n notification.BookingEmployeeNotice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *notifierMock) NotifyBookingToCoworking(ctx context.Context, n notification.BookingCoworkingNotice) error {
	return m.Called(ctx, n).Error(0)
}

func (m *notifierMock) credential(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plain[email]
}

// failingIssuer simula un fallo del hash.
type failingIssuer struct{}

func (failingIssuer) Issue() (string, string, error) {
	return "", "", errors.New("bcrypt: cost out of range")
}

// failingEmployees falla en la escritura de la membresía.
type failingEmployees struct {
	repository.EmployeeRepository
	err error
}

func (f failingEmployees) Create(context.Context, *entity.Employee) error {
	return f.err
}

// faultyTx inyecta failingEmployees en cada transacción.
type faultyTx struct {
	inner onboarding.TxRunner
	err   error
}

func (f faultyTx) Run(ctx context.Context, fn func(tx onboarding.Stores) error) error {
	return f.inner.Run(ctx, func(tx onboarding.Stores) error {
		tx.Employees = failingEmployees{EmployeeRepository: tx.Employees, err: f.err}
		return fn(tx)
	})
}

var testPolicy = onboarding.CredentialPolicy{Length: 16, BcryptCost: 4}

type env struct {
	db         *memory.DB
	notifier   *notifierMock
	dispatcher *notification.Dispatcher
	requests   *onboarding.RequestUseCase
	activation *onboarding.ActivationUseCase
	provision  *onboarding.ProvisionUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return newEnvWith(t, nil, nil)
}

// newEnvWith permite envolver el TxRunner del almacén y sustituir el emisor de credenciales.
func newEnvWith(t *testing.T, wrap func(*memory.DB) onboarding.TxRunner, issuer onboarding.CredentialIssuer) *env {
	t.Helper()
	db := memory.NewDB()
	var tx onboarding.TxRunner = db
	if wrap != nil {
		tx = wrap(db)
	}
	if issuer == nil {
		issuer = testPolicy.Issuer()
	}
	n := &notifierMock{}
	log := logger.Nop()
	d := notification.NewDispatcher(n, log, 0)
	return &env{
		db:         db,
		notifier:   n,
		dispatcher: d,
		requests:   onboarding.NewRequestUseCase(db.Stores(), log),
		activation: onboarding.NewActivationUseCase(db.Stores(), tx, issuer, d, log),
		provision:  onboarding.NewProvisionUseCase(db.Stores(), tx, issuer, d, log),
	}
}

func (e *env) submit(t *testing.T, kind entity.RequestKind, email, companyName string) *dto.RequestResponse {
	t.Helper()
	req, err := e.requests.Submit(context.Background(), kind, dto.SubmitRequest{
		Email:       email,
		CompanyName: companyName,
		Name:        "Ana",
		Lastname:    "Ruiz",
		Phone:       "3001234567",
		Position:    "CEO",
		Size:        "10-50",
	})
	require.NoError(t, err)
	return req
}

// activated crea una empresa activa y devuelve la empresa y el id de su admin.
func (e *env) activated(t *testing.T, email, companyName string) (*dto.CompanyResponse, string) {
	t.Helper()
	e.notifier.On("NotifyActivation", mock.Anything, mock.Anything).Return(nil).Maybe()
	req := e.submit(t, entity.RequestKindCompany, email, companyName)
	company, err := e.activation.Activate(context.Background(), req.ID)
	require.NoError(t, err)
	admin, err := e.db.Stores().Users.GetByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, admin)
	e.dispatcher.Wait()
	return company, admin.ID
}
