package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo membresías en memoria.
type EmployeeRepo struct {
	sc scope
}

// Create inserta la membresía. ErrConflict si el usuario ya tiene una.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	return r.sc.do(ctx, func(st *state) error {
		if _, ok := st.employees[employee.ID]; ok {
			return fmt.Errorf("insert employee: %w", domain.ErrConflict)
		}
		for _, e := range st.employees {
			if e.UserID == employee.UserID {
				return fmt.Errorf("insert employee: %w", domain.ErrConflict)
			}
		}
		st.employees[employee.ID] = *employee
		return nil
	})
}

// GetByUserID devuelve (nil, nil) si el usuario no es empleado.
func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID string) (*entity.Employee, error) {
	var out *entity.Employee
	err := r.sc.do(ctx, func(st *state) error {
		for _, e := range st.employees {
			if e.UserID == userID {
				e := e
				out = &e
				return nil
			}
		}
		return nil
	})
	return out, err
}

// ListByCompany membresías de la empresa por fecha de alta.
func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	err := r.sc.do(ctx, func(st *state) error {
		for _, e := range st.employees {
			if e.CompanyID == companyID {
				e := e
				out = append(out, &e)
			}
		}
		sort.Slice(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
			return out[i].ID < out[j].ID
		})
		return nil
	})
	return out, err
}
