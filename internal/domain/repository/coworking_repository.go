package repository

import (
	"context"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// CoworkingRepository define el puerto de persistencia para Coworking.
type CoworkingRepository interface {
	Create(ctx context.Context, coworking *entity.Coworking) error
	GetByID(ctx context.Context, id string) (*entity.Coworking, error)
	Update(ctx context.Context, coworking *entity.Coworking) error
	List(ctx context.Context, status entity.CoworkingStatus, limit, offset int) ([]*entity.Coworking, int, error)
}
