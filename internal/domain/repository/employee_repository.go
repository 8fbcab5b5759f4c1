package repository

import (
	"context"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByUserID(ctx context.Context, userID string) (*entity.Employee, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error)
}
