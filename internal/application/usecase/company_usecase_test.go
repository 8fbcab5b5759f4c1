package usecase_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/usecase"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func seedCompany(t *testing.T, db *memory.DB, id, name string, status entity.CompanyStatus, updated time.Time) {
	t.Helper()
	require.NoError(t, db.Stores().Companies.Create(context.Background(), &entity.Company{
		ID: id, Name: name, Email: id + "@x.io", Status: status, CreatedAt: base, UpdatedAt: updated,
	}))
}

func seedMember(t *testing.T, db *memory.DB, userID, email, companyID string, role entity.Role) {
	t.Helper()
	ctx := context.Background()
	s := db.Stores()
	require.NoError(t, s.Users.Create(ctx, &entity.User{
		ID: userID, Name: "N-" + userID, Email: email, Role: role, Status: entity.UserStatusActive,
		CreatedAt: base, UpdatedAt: base,
	}))
	require.NoError(t, s.Employees.Create(ctx, &entity.Employee{
		ID: "e-" + userID, UserID: userID, CompanyID: companyID, Passes: 2, PassesAvailable: 1,
		CreatedAt: base, UpdatedAt: base,
	}))
}

func newCompanyUC(db *memory.DB) *usecase.CompanyUseCase {
	s := db.Stores()
	return usecase.NewCompanyUseCase(s.Companies, s.Employees, s.Users)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyList_OrdenFiltrosYTotal(t *testing.T) {
	db := memory.NewDB()
	seedCompany(t, db, "c1", "Acme", entity.CompanyStatusAccepted, base)
	seedCompany(t, db, "c2", "Globex", entity.CompanyStatusAccepted, base.Add(time.Hour))
	seedCompany(t, db, "c3", "Initech", entity.CompanyStatusPending, base.Add(2*time.Hour))
	uc := newCompanyUC(db)
	ctx := context.Background()

	out, err := uc.List(ctx, entity.CompanyFilter{}, dto.PageRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 2, out.Limit)
	require.Len(t, out.Companies, 2)
	assert.Equal(t, "Initech", out.Companies[0].Name)
	assert.Equal(t, "Globex", out.Companies[1].Name)

	out, err = uc.List(ctx, entity.CompanyFilter{Status: entity.CompanyStatusAccepted}, dto.PageRequest{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Companies, 1)
	assert.Equal(t, "Acme", out.Companies[0].Name)

	out, err = uc.List(ctx, entity.CompanyFilter{Name: "acme"}, dto.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, out.Total, "el filtro de nombre es exacto")
}

func TestCompanyList_PaginacionInvalida(t *testing.T) {
	uc := newCompanyUC(memory.NewDB())
	for _, p := range []dto.PageRequest{{Page: 0, Limit: 10}, {Page: 1, Limit: 0}, {Page: -1, Limit: -1}} {
		_, err := uc.List(context.Background(), entity.CompanyFilter{}, p)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCompanyList_PaginaDesbordaOffset(t *testing.T) {
	db := memory.NewDB()
	seedCompany(t, db, "c1", "Acme", entity.CompanyStatusAccepted, base)
	uc := newCompanyUC(db)

	var err error
	assert.NotPanics(t, func() {
		_, err = uc.List(context.Background(), entity.CompanyFilter{}, dto.PageRequest{Page: math.MaxInt64/100 + 2, Limit: 100})
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.List(context.Background(), entity.CompanyFilter{}, dto.PageRequest{Page: math.MaxInt64 / 100, Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, out.Companies)
}

func TestCompanyList_PaginaFueraDeRango(t *testing.T) {
	db := memory.NewDB()
	seedCompany(t, db, "c1", "Acme", entity.CompanyStatusAccepted, base)
	out, err := newCompanyUC(db).List(context.Background(), entity.CompanyFilter{}, dto.PageRequest{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Empty(t, out.Companies)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyGetByID_ConEmpleadosYUsuarios(t *testing.T) {
	db := memory.NewDB()
	seedCompany(t, db, "c1", "Acme", entity.CompanyStatusAccepted, base)
	seedMember(t, db, "u1", "a@acme.io", "c1", entity.RoleAdminCompany)
	seedMember(t, db, "u2", "b@acme.io", "c1", entity.RoleEmployee)
	seedCompany(t, db, "c2", "Globex", entity.CompanyStatusAccepted, base)
	seedMember(t, db, "u3", "c@globex.io", "c2", entity.RoleEmployee)

	out, err := newCompanyUC(db).GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)
	require.Len(t, out.Employees, 2)
	emails := []string{out.Employees[0].User.Email, out.Employees[1].User.Email}
	assert.ElementsMatch(t, []string{"a@acme.io", "b@acme.io"}, emails)
	assert.Equal(t, 2, out.Employees[0].Passes)
	assert.Equal(t, 1, out.Employees[0].PassesAvailable)
}

func TestCompanyGetByID_NoExiste(t *testing.T) {
	_, err := newCompanyUC(memory.NewDB()).GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUpdate_Merge(t *testing.T) {
	db := memory.NewDB()
	seedCompany(t, db, "c1", "Acme", entity.CompanyStatusPending, base)
	uc := newCompanyUC(db)
	ctx := context.Background()

	sector := "Tecnología"
	passes := 40
	out, err := uc.Update(ctx, "c1", dto.UpdateCompanyRequest{BusinessSector: &sector, TotalPasses: &passes})
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)
	assert.Equal(t, "Tecnología", out.BusinessSector)
	assert.Equal(t, 40, out.TotalPasses)
	assert.True(t, out.UpdatedAt.After(base))

	bad := "CLOSED"
	_, err = uc.Update(ctx, "c1", dto.UpdateCompanyRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "ghost", dto.UpdateCompanyRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUpdate_EmailNormalizado(t *testing.T) {
	db := memory.NewDB()
	seedCompany(t, db, "c1", "Acme", entity.CompanyStatusAccepted, base)
	uc := newCompanyUC(db)
	ctx := context.Background()

	email := "  Contacto@ACME.io "
	out, err := uc.Update(ctx, "c1", dto.UpdateCompanyRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "contacto@acme.io", out.Email)

	bad := "no-es-email"
	_, err = uc.Update(ctx, "c1", dto.UpdateCompanyRequest{Email: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
