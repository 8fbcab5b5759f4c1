package onboarding_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/pkg/credential"
	"github.com/jhoicas/coco-api/pkg/logger"
)

func intPtr(v int) *int { return &v }

func TestProvision_CreaEmpleado(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company, adminID := e.activated(t, "ana@acme.io", "Acme")

	user, err := e.provision.Provision(ctx, adminID, dto.ProvisionEmployeeRequest{
		CompanyID: company.ID, Email: " Luis@Acme.io ", Name: "Luis", Lastname: "Paz",
		Identification: "1020", Passes: 5, PassesAvailable: intPtr(3),
	})
	require.NoError(t, err)
	e.dispatcher.Wait()

	assert.Equal(t, "luis@acme.io", user.Email)
	assert.Equal(t, string(entity.RoleEmployee), user.Role)
	assert.True(t, user.MustChangePassword)

	emp, err := e.db.Stores().Employees.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, company.ID, emp.CompanyID)
	assert.Equal(t, 5, emp.Passes)
	assert.Equal(t, 3, emp.PassesAvailable)

	stored, _ := e.db.Stores().Users.GetByID(ctx, user.ID)
	assert.NoError(t, credential.NewBcryptHasher(4).Compare(stored.PasswordHash, e.notifier.credential("luis@acme.io")))
}

func TestProvision_PasesDisponiblesPorDefecto(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company, adminID := e.activated(t, "ana@acme.io", "Acme")

	user, err := e.provision.Provision(ctx, adminID, dto.ProvisionEmployeeRequest{
		CompanyID: company.ID, Email: "luis@acme.io", Name: "Luis", Passes: 4,
	})
	require.NoError(t, err)
	e.dispatcher.Wait()

	emp, _ := e.db.Stores().Employees.GetByUserID(ctx, user.ID)
	require.NotNil(t, emp)
	assert.Equal(t, 4, emp.PassesAvailable)
}

func TestProvision_PasesInvalidos(t *testing.T) {
	e := newEnv(t)
	company, adminID := e.activated(t, "ana@acme.io", "Acme")

	cases := []struct {
		name      string
		passes    int
		available *int
	}{
		{"disponibles mayor que total", 2, intPtr(3)},
		{"disponibles negativos", 2, intPtr(-1)},
		{"total negativo", -1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.provision.Provision(context.Background(), adminID, dto.ProvisionEmployeeRequest{
				CompanyID: company.ID, Email: "luis@acme.io", Name: "Luis",
				Passes: tc.passes, PassesAvailable: tc.available,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	user, _ := e.db.Stores().Users.GetByEmail(context.Background(), "luis@acme.io")
	assert.Nil(t, user)
}

func TestProvision_AdminDeOtraEmpresaEsForbidden(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	_, adminA := e.activated(t, "ana@acme.io", "Acme")
	companyB, _ := e.activated(t, "bob@globex.io", "Globex")
	callsBefore := len(e.notifier.Calls)

	_, err := e.provision.Provision(ctx, adminA, dto.ProvisionEmployeeRequest{
		CompanyID: companyB.ID, Email: "intruso@acme.io", Name: "X", Passes: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	user, _ := e.db.Stores().Users.GetByEmail(ctx, "intruso@acme.io")
	assert.Nil(t, user)
	e.dispatcher.Wait()
	assert.Len(t, e.notifier.Calls, callsBefore)
}

func TestProvision_SinMembresiaEsForbidden(t *testing.T) {
	e := newEnv(t)
	company, _ := e.activated(t, "ana@acme.io", "Acme")

	_, err := e.provision.Provision(context.Background(), "superadmin-sin-empresa", dto.ProvisionEmployeeRequest{
		CompanyID: company.ID, Email: "luis@acme.io", Name: "Luis", Passes: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProvision_EmailExistente(t *testing.T) {
	e := newEnv(t)
	company, adminID := e.activated(t, "ana@acme.io", "Acme")

	_, err := e.provision.Provision(context.Background(), adminID, dto.ProvisionEmployeeRequest{
		CompanyID: company.ID, Email: "ANA@acme.io", Name: "Ana", Passes: 1,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProvision_EmpresaInexistente(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	// membresía que apunta a una empresa que ya no existe
	require.NoError(t, e.db.Stores().Employees.Create(ctx, &entity.Employee{ID: "e-ghost", UserID: "u-ghost", CompanyID: "c-ghost"}))

	_, err := e.provision.Provision(ctx, "u-ghost", dto.ProvisionEmployeeRequest{
		CompanyID: "c-ghost", Email: "luis@acme.io", Name: "Luis", Passes: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProvision_FalloDeHash(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company, adminID := e.activated(t, "ana@acme.io", "Acme")
	prov := onboarding.NewProvisionUseCase(e.db.Stores(), e.db, failingIssuer{}, e.dispatcher, logger.Nop())

	_, err := prov.Provision(ctx, adminID, dto.ProvisionEmployeeRequest{
		CompanyID: company.ID, Email: "luis@acme.io", Name: "Luis", Passes: 1,
	})
	assert.ErrorIs(t, err, domain.ErrHashingFailure)
	user, _ := e.db.Stores().Users.GetByEmail(ctx, "luis@acme.io")
	assert.Nil(t, user)
}

func TestProvision_FalloEnMembresiaNoDejaUsuario(t *testing.T) {
	boom := errors.New("insert employee: timeout")
	e := newEnv(t)
	ctx := context.Background()
	company, adminID := e.activated(t, "ana@acme.io", "Acme")
	prov := onboarding.NewProvisionUseCase(e.db.Stores(), faultyTx{inner: e.db, err: boom}, testPolicy.Issuer(), e.dispatcher, logger.Nop())

	_, err := prov.Provision(ctx, adminID, dto.ProvisionEmployeeRequest{
		CompanyID: company.ID, Email: "luis@acme.io", Name: "Luis", Passes: 1,
	})
	assert.ErrorIs(t, err, boom)
	user, _ := e.db.Stores().Users.GetByEmail(ctx, "luis@acme.io")
	assert.Nil(t, user)
}

func TestProvision_MismoEmailConcurrente(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company, adminID := e.activated(t, "ana@acme.io", "Acme")

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.provision.Provision(ctx, adminID, dto.ProvisionEmployeeRequest{
				CompanyID: company.ID, Email: "luis@acme.io", Name: "Luis", Passes: 1,
			})
		}(i)
	}
	wg.Wait()
	e.dispatcher.Wait()

	var ok, conflict int
	for _, err := range errs {
		if err == nil {
			ok++
		} else if errors.Is(err, domain.ErrConflict) {
			conflict++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflict)

	members, err := e.db.Stores().Employees.ListByCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2) // admin + un empleado
}
