package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/identity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

// CompanyUseCase consultas y mantenimiento del directorio de empresas.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	employees repository.EmployeeRepository
	users     repository.UserRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(companies repository.CompanyRepository, employees repository.EmployeeRepository, users repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, employees: employees, users: users}
}

// List lista empresas (1-indexado), más recientes por updated_at primero. name filtra por coincidencia exacta.
func (uc *CompanyUseCase) List(ctx context.Context, filter entity.CompanyFilter, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if filter.Status != "" && filter.Status != entity.CompanyStatusPending && filter.Status != entity.CompanyStatusAccepted {
		return nil, fmt.Errorf("%w: estado de empresa %q", domain.ErrInvalidInput, filter.Status)
	}
	list, total, err := uc.companies.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.FromCompany(c))
	}
	return &dto.CompanyListResponse{Page: page.Page, Limit: page.Limit, Total: total, Companies: items}, nil
}

// GetByID devuelve la empresa con sus empleados y el usuario de cada uno.
// Los usuarios se resuelven en una sola consulta y se indexan por id.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
	}
	employees, err := uc.employees.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.UserID)
	}
	users, err := uc.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := &dto.CompanyDetailResponse{
		CompanyResponse: *dto.FromCompany(company),
		Employees:       make([]dto.EmployeeResponse, 0, len(employees)),
	}
	for _, e := range employees {
		out.Employees = append(out.Employees, dto.FromEmployee(e, byID[e.UserID]))
	}
	return out, nil
}

// Update aplica un merge de los campos presentes y guarda.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name no puede estar vacío", domain.ErrInvalidInput)
		}
		company.Name = *in.Name
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		email, err := identity.ValidEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		company.Email = email
	}
	if in.QuantityBeneficiaries != nil {
		if *in.QuantityBeneficiaries < 0 {
			return nil, fmt.Errorf("%w: quantityBeneficiaries negativo", domain.ErrInvalidInput)
		}
		company.QuantityBeneficiaries = *in.QuantityBeneficiaries
	}
	if in.BusinessSector != nil {
		company.BusinessSector = *in.BusinessSector
	}
	if in.Size != nil {
		company.Size = *in.Size
	}
	if in.Status != nil {
		status := entity.CompanyStatus(*in.Status)
		if status != entity.CompanyStatusPending && status != entity.CompanyStatusAccepted {
			return nil, fmt.Errorf("%w: estado de empresa %q", domain.ErrInvalidInput, *in.Status)
		}
		company.Status = status
	}
	if in.TotalPasses != nil {
		if *in.TotalPasses < 0 {
			return nil, fmt.Errorf("%w: totalPasses negativo", domain.ErrInvalidInput)
		}
		company.TotalPasses = *in.TotalPasses
	}
	company.UpdatedAt = time.Now().UTC()
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return dto.FromCompany(company), nil
}
