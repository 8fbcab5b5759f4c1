// Package seed precarga empresas de demostración. Es idempotente: una empresa cuyo email ya
// existe se omite.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/identity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
	"github.com/jhoicas/coco-api/pkg/logger"
)

//go:embed data/companies.json
var companiesJSON []byte

// itemTimeout tiempo máximo por inserción.
const itemTimeout = 3 * time.Second

type companyItem struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	QuantityBeneficiaries int    `json:"quantityBeneficiaries"`
	BusinessSector        string `json:"businessSector"`
	Size                  string `json:"size"`
	TotalPasses           int    `json:"totalPasses"`
}

// Result conteo de una ejecución.
type Result struct {
	Created int
	Skipped int
}

// Seeder inserta empresas si no existen.
type Seeder struct {
	companies repository.CompanyRepository
	log       *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(companies repository.CompanyRepository, log *logger.Logger) *Seeder {
	return &Seeder{companies: companies, log: log.Component("seed")}
}

// Companies carga el listado de path o, si path está vacío, el embebido.
func (s *Seeder) Companies(ctx context.Context, path string) (Result, error) {
	data := companiesJSON
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Result{}, fmt.Errorf("leer %s: %w", path, err)
		}
		data = raw
	}
	return s.CompaniesFrom(ctx, data)
}

// CompaniesFrom inserta en orden las empresas del JSON dado.
func (s *Seeder) CompaniesFrom(ctx context.Context, data []byte) (Result, error) {
	var items []companyItem
	if err := json.Unmarshal(data, &items); err != nil {
		return Result{}, fmt.Errorf("decodificar empresas: %w", err)
	}

	var res Result
	for _, it := range items {
		email := identity.NormalizeEmail(it.Email)
		if email == "" || strings.TrimSpace(it.Name) == "" {
			s.log.Warn().Str("name", it.Name).Msg("seed: empresa sin nombre o email, se omite")
			res.Skipped++
			continue
		}
		existing, err := s.companies.GetByEmail(ctx, email)
		if err != nil {
			return res, err
		}
		if existing != nil {
			s.log.Info().Str("email", email).Msg("seed: empresa ya existe")
			res.Skipped++
			continue
		}

		now := time.Now().UTC()
		c := &entity.Company{
			ID:                    uuid.New().String(),
			Name:                  strings.TrimSpace(it.Name),
			Phone:                 it.Phone,
			Email:                 email,
			QuantityBeneficiaries: it.QuantityBeneficiaries,
			BusinessSector:        it.BusinessSector,
			Size:                  it.Size,
			Status:                entity.CompanyStatusAccepted,
			TotalPasses:           it.TotalPasses,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		ictx, cancel := context.WithTimeout(ctx, itemTimeout)
		err = s.companies.Create(ictx, c)
		cancel()
		if err != nil {
			return res, fmt.Errorf("seed %s: %w", email, err)
		}
		s.log.Info().Str("email", email).Str("company_id", c.ID).Msg("seed: empresa creada")
		res.Created++
	}
	s.log.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("seed: empresas cargadas")
	return res, nil
}
