//go:build integration

package postgres_test

/*
	Para correr: go test -tags=integration -v ./internal/infrastructure/postgres -count=1
*/

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/infrastructure/notify"
	"github.com/jhoicas/coco-api/internal/infrastructure/postgres"
	"github.com/jhoicas/coco-api/pkg/config"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// startPostgres sube un PostgreSQL real, aplica las migraciones y devuelve el pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "coco",
			"POSTGRES_PASSWORD": "coco",
			"POSTGRES_DB":       "coco",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err, "start postgres")
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{
		DatabaseURL: fmt.Sprintf("postgres://coco:coco@%s:%s/coco?sslmode=disable", host, port.Port()),
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	require.NoError(t, postgres.Migrate(ctx, pool), "las migraciones son idempotentes")
	return pool
}

func newActivation(pool *pgxpool.Pool) (*onboarding.RequestUseCase, *onboarding.ActivationUseCase, *notification.Dispatcher) {
	log := logger.Nop()
	stores := postgres.NewStores(pool)
	d := notification.NewDispatcher(notify.NewLogNotifier(log), log, 0)
	policy := onboarding.CredentialPolicy{Length: 16, BcryptCost: 4}
	return onboarding.NewRequestUseCase(stores, log),
		onboarding.NewActivationUseCase(stores, postgres.NewTxRunner(pool), policy.Issuer(), d, log),
		d
}

func TestPostgres_ActivacionConcurrente(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	requests, activation, d := newActivation(pool)

	req, err := requests.Submit(ctx, entity.RequestKindCompany, dto.SubmitRequest{
		Email: "ana@acme.io", CompanyName: "Acme", Name: "Ana",
	})
	require.NoError(t, err)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = activation.Activate(ctx, req.ID)
		}(i)
	}
	wg.Wait()
	d.Wait()

	var ok, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrConflict):
			rejected++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)

	var companies, users int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM companies`).Scan(&companies))
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&users))
	assert.Equal(t, 1, companies)
	assert.Equal(t, 1, users)
}

func TestPostgres_UnicidadDeEmail(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	users := postgres.NewUserRepository(pool)
	now := time.Now().UTC()

	u := &entity.User{
		ID: "6f1c0b8e-6a53-4c36-9a4e-3f3f2b6c9a01", Name: "Ana", Email: "ana@acme.io", PasswordHash: "x",
		Status: entity.UserStatusActive, Role: entity.RoleEmployee, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, users.Create(ctx, u))

	dup := *u
	dup.ID = "6f1c0b8e-6a53-4c36-9a4e-3f3f2b6c9a02"
	dup.Email = "ANA@acme.io"
	assert.ErrorIs(t, users.Create(ctx, &dup), domain.ErrConflict)

	got, err := users.GetByEmail(ctx, "Ana@Acme.io")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	missing, err := users.GetByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgres_RollbackDejaSolicitudPendiente(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	requests, _, _ := newActivation(pool)
	req, err := requests.Submit(ctx, entity.RequestKindCompany, dto.SubmitRequest{
		Email: "bob@globex.io", CompanyName: "Globex", Name: "Bob",
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = postgres.NewTxRunner(pool).Run(ctx, func(tx onboarding.Stores) error {
		if err := tx.Requests.UpdateStatus(ctx, req.ID, entity.RequestStatusClosed); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := postgres.NewRequestRepository(pool).GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, got.Status)
}

func TestPostgres_ListadoDeEmpresas(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	repo := postgres.NewCompanyRepository(pool)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ids := []string{
		"0b6b3c52-3f0e-4d6c-8b8f-1a2b3c4d5e01",
		"0b6b3c52-3f0e-4d6c-8b8f-1a2b3c4d5e02",
		"0b6b3c52-3f0e-4d6c-8b8f-1a2b3c4d5e03",
	}
	for i, id := range ids {
		require.NoError(t, repo.Create(ctx, &entity.Company{
			ID: id, Name: fmt.Sprintf("C%d", i), Status: entity.CompanyStatusAccepted,
			CreatedAt: base, UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	list, total, err := repo.List(ctx, entity.CompanyFilter{Status: entity.CompanyStatusAccepted}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 2)
	assert.Equal(t, "C2", list[0].Name)

	list, total, err = repo.List(ctx, entity.CompanyFilter{Name: "C0"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, ids[0], list[0].ID)
}
