package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo empresas en memoria.
type CompanyRepo struct {
	sc scope
}

// Create inserta una empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	return r.sc.do(ctx, func(st *state) error {
		if _, ok := st.companies[company.ID]; ok {
			return fmt.Errorf("insert company: %w", domain.ErrConflict)
		}
		st.companies[company.ID] = *company
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	var out *entity.Company
	err := r.sc.do(ctx, func(st *state) error {
		if c, ok := st.companies[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	var out *entity.Company
	err := r.sc.do(ctx, func(st *state) error {
		for _, c := range st.companies {
			if sameEmail(c.Email, email) {
				c := c
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

// Update reemplaza la empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	return r.sc.do(ctx, func(st *state) error {
		current, ok := st.companies[company.ID]
		if !ok {
			return fmt.Errorf("update company %s: %w", company.ID, domain.ErrNotFound)
		}
		updated := *company
		updated.CreatedAt = current.CreatedAt
		st.companies[company.ID] = updated
		return nil
	})
}

// List filtra por estado y nombre exacto, updated_at DESC.
func (r *CompanyRepo) List(ctx context.Context, filter entity.CompanyFilter, limit, offset int) ([]*entity.Company, int, error) {
	var (
		out   []*entity.Company
		total int
	)
	err := r.sc.do(ctx, func(st *state) error {
		all := make([]*entity.Company, 0, len(st.companies))
		for _, c := range st.companies {
			if filter.Status != "" && c.Status != filter.Status {
				continue
			}
			if filter.Name != "" && c.Name != filter.Name {
				continue
			}
			c := c
			all = append(all, &c)
		}
		sort.Slice(all, func(i, j int) bool {
			if !all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
				return all[i].UpdatedAt.After(all[j].UpdatedAt)
			}
			return all[i].ID < all[j].ID
		})
		total = len(all)
		out = paginate(all, limit, offset)
		return nil
	})
	return out, total, err
}
