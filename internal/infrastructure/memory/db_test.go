package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/infrastructure/memory"
)

func newUser(id, email string) *entity.User {
	now := time.Now().UTC()
	return &entity.User{ID: id, Email: email, Name: "N", Status: entity.UserStatusActive, Role: entity.RoleEmployee, CreatedAt: now, UpdatedAt: now}
}

// ─── Transacciones ───────────────────────────────────────────────────────────

func TestRun_CommitPublicaCambios(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()

	err := db.Run(ctx, func(tx onboarding.Stores) error {
		return tx.Users.Create(ctx, newUser("u1", "a@x.com"))
	})
	require.NoError(t, err)

	got, err := db.Stores().Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestRun_ErrorDescartaTodo(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.Run(ctx, func(tx onboarding.Stores) error {
		require.NoError(t, tx.Users.Create(ctx, newUser("u1", "a@x.com")))
		require.NoError(t, tx.Companies.Create(ctx, &entity.Company{ID: "c1", Name: "Acme"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	u, _ := db.Stores().Users.GetByID(ctx, "u1")
	c, _ := db.Stores().Companies.GetByID(ctx, "c1")
	assert.Nil(t, u)
	assert.Nil(t, c)
}

func TestRun_LecturasDentroVenEscriturasPropias(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()

	err := db.Run(ctx, func(tx onboarding.Stores) error {
		require.NoError(t, tx.Users.Create(ctx, newUser("u1", "a@x.com")))
		u, err := tx.Users.GetByEmail(ctx, "A@X.COM")
		require.NoError(t, err)
		assert.NotNil(t, u)
		return nil
	})
	require.NoError(t, err)
}

func TestRun_ContextoCancelado(t *testing.T) {
	db := memory.NewDB()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := db.Run(ctx, func(onboarding.Stores) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

// ─── Unicidad ────────────────────────────────────────────────────────────────

func TestUsers_EmailUnicoSinDistinguirCaja(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	users := db.Stores().Users

	require.NoError(t, users.Create(ctx, newUser("u1", "ana@x.com")))
	err := users.Create(ctx, newUser("u2", "ANA@x.com"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUsers_CreacionConcurrenteUnSoloGanador(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok, confl int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := db.Run(ctx, func(tx onboarding.Stores) error {
				return tx.Users.Create(ctx, newUser(string(rune('a'+i)), "same@x.com"))
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, domain.ErrConflict) {
				confl++
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, confl)
}

func TestRequests_UnaPendientePorEmail(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	reqs := db.Stores().Requests

	require.NoError(t, reqs.Create(ctx, &entity.Request{ID: "r1", Email: "a@x.com", Status: entity.RequestStatusPending}))
	assert.ErrorIs(t, reqs.Create(ctx, &entity.Request{ID: "r2", Email: "a@x.com", Status: entity.RequestStatusPending}), domain.ErrConflict)

	require.NoError(t, reqs.UpdateStatus(ctx, "r1", entity.RequestStatusClosed))
	assert.NoError(t, reqs.Create(ctx, &entity.Request{ID: "r3", Email: "a@x.com", Status: entity.RequestStatusPending}))
}

func TestEmployees_UnaMembresiaPorUsuario(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	emps := db.Stores().Employees

	require.NoError(t, emps.Create(ctx, &entity.Employee{ID: "e1", UserID: "u1", CompanyID: "c1"}))
	assert.ErrorIs(t, emps.Create(ctx, &entity.Employee{ID: "e2", UserID: "u1", CompanyID: "c2"}), domain.ErrConflict)
}

// ─── Listados ────────────────────────────────────────────────────────────────

func TestCompanies_ListOrdenYPaginacion(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	repo := db.Stores().Companies
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, &entity.Company{
			ID: name, Name: name, Status: entity.CompanyStatusAccepted,
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	page, total, err := repo.List(ctx, entity.CompanyFilter{}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "C", page[0].Name)
	assert.Equal(t, "B", page[1].Name)

	page, _, err = repo.List(ctx, entity.CompanyFilter{}, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "A", page[0].Name)

	page, total, err = repo.List(ctx, entity.CompanyFilter{Name: "B"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "B", page[0].Name)
}

func TestStores_DevuelvenCopias(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	users := db.Stores().Users
	require.NoError(t, users.Create(ctx, newUser("u1", "a@x.com")))

	got, _ := users.GetByID(ctx, "u1")
	got.Name = "mutado"

	again, _ := users.GetByID(ctx, "u1")
	assert.Equal(t, "N", again.Name)
}
