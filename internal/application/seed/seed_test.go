package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/coco-api/internal/application/seed"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/infrastructure/memory"
	"github.com/jhoicas/coco-api/pkg/logger"
)

func TestCompanies_EmbebidoEsIdempotente(t *testing.T) {
	db := memory.NewDB()
	s := seed.NewSeeder(db.Stores().Companies, logger.Nop())
	ctx := context.Background()

	first, err := s.Companies(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 4, first.Created)
	assert.Zero(t, first.Skipped)

	second, err := s.Companies(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, second.Created)
	assert.Equal(t, 4, second.Skipped)

	_, total, err := db.Stores().Companies.List(ctx, entity.CompanyFilter{}, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestCompanies_DesdeArchivo(t *testing.T) {
	db := memory.NewDB()
	ctx := context.Background()
	require.NoError(t, db.Stores().Companies.Create(ctx, &entity.Company{ID: "prev", Name: "Previa", Email: "a@x.io"}))

	path := filepath.Join(t.TempDir(), "companies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Previa", "email": "A@X.io"},
		{"name": "Nueva", "email": "b@x.io", "totalPasses": 3},
		{"name": "", "email": "c@x.io"}
	]`), 0o600))

	res, err := seed.NewSeeder(db.Stores().Companies, logger.Nop()).Companies(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Created: 1, Skipped: 2}, res)

	c, err := db.Stores().Companies.GetByEmail(ctx, "b@x.io")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 3, c.TotalPasses)
	assert.Equal(t, entity.CompanyStatusAccepted, c.Status)
}

func TestCompanies_JSONInvalido(t *testing.T) {
	s := seed.NewSeeder(memory.NewDB().Stores().Companies, logger.Nop())
	_, err := s.CompaniesFrom(context.Background(), []byte(`{no`))
	assert.Error(t, err)

	_, err = s.Companies(context.Background(), "/no/existe.json")
	assert.Error(t, err)
}
