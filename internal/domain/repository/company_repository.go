package repository

import (
	"context"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. GetBy* devuelve (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByEmail(ctx context.Context, email string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// List devuelve la página pedida ordenada por updated_at DESC y el total sin paginar.
	List(ctx context.Context, filter entity.CompanyFilter, limit, offset int) ([]*entity.Company, int, error)
}
