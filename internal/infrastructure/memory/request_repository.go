package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo solicitudes en memoria.
type RequestRepo struct {
	sc scope
}

// Create inserta una solicitud. ErrConflict si ya hay otra PENDING con el mismo email.
func (r *RequestRepo) Create(ctx context.Context, request *entity.Request) error {
	return r.sc.do(ctx, func(st *state) error {
		if _, ok := st.requests[request.ID]; ok {
			return fmt.Errorf("insert request: %w", domain.ErrConflict)
		}
		if request.Status == entity.RequestStatusPending {
			for _, existing := range st.requests {
				if existing.Status == entity.RequestStatusPending && sameEmail(existing.Email, request.Email) {
					return fmt.Errorf("insert request: %w", domain.ErrConflict)
				}
			}
		}
		st.requests[request.ID] = *request
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *RequestRepo) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	var out *entity.Request
	err := r.sc.do(ctx, func(st *state) error {
		if req, ok := st.requests[id]; ok {
			out = &req
		}
		return nil
	})
	return out, err
}

// GetForUpdate dentro de una transacción el estado ya es exclusivo; equivale a GetByID.
func (r *RequestRepo) GetForUpdate(ctx context.Context, id string) (*entity.Request, error) {
	return r.GetByID(ctx, id)
}

// GetPendingByEmail solicitud PENDING con ese email o (nil, nil).
func (r *RequestRepo) GetPendingByEmail(ctx context.Context, email string) (*entity.Request, error) {
	var out *entity.Request
	err := r.sc.do(ctx, func(st *state) error {
		for _, req := range st.requests {
			if req.Status == entity.RequestStatusPending && sameEmail(req.Email, email) {
				req := req
				out = &req
				return nil
			}
		}
		return nil
	})
	return out, err
}

// UpdateStatus cambia el estado. ErrNotFound si no existe.
func (r *RequestRepo) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	return r.sc.do(ctx, func(st *state) error {
		req, ok := st.requests[id]
		if !ok {
			return fmt.Errorf("update request %s: %w", id, domain.ErrNotFound)
		}
		req.Status = status
		req.UpdatedAt = time.Now().UTC()
		st.requests[id] = req
		return nil
	})
}

// List filtra por estado y tipo, created_at DESC.
func (r *RequestRepo) List(ctx context.Context, filter entity.RequestFilter, limit, offset int) ([]*entity.Request, int, error) {
	var (
		out   []*entity.Request
		total int
	)
	err := r.sc.do(ctx, func(st *state) error {
		all := make([]*entity.Request, 0, len(st.requests))
		for _, req := range st.requests {
			if filter.Status != "" && req.Status != filter.Status {
				continue
			}
			if filter.Kind != "" && req.Kind != filter.Kind {
				continue
			}
			req := req
			all = append(all, &req)
		}
		sort.Slice(all, func(i, j int) bool {
			if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
				return all[i].CreatedAt.After(all[j].CreatedAt)
			}
			return all[i].ID < all[j].ID
		})
		total = len(all)
		out = paginate(all, limit, offset)
		return nil
	})
	return out, total, err
}
