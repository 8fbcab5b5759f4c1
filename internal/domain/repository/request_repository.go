package repository

import (
	"context"

	"github.com/jhoicas/coco-api/internal/domain/entity"
)

// RequestRepository define el puerto de persistencia para las solicitudes de alta.
// Create devuelve domain.ErrConflict si ya hay una solicitud PENDING con el mismo email.
type RequestRepository interface {
	Create(ctx context.Context, request *entity.Request) error
	GetByID(ctx context.Context, id string) (*entity.Request, error)
	// GetForUpdate obtiene la solicitud bloqueando la fila hasta el fin de la transacción
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de TxRunner.Run.
	GetForUpdate(ctx context.Context, id string) (*entity.Request, error)
	GetPendingByEmail(ctx context.Context, email string) (*entity.Request, error)
	UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error
	List(ctx context.Context, filter entity.RequestFilter, limit, offset int) ([]*entity.Request, int, error)
}
