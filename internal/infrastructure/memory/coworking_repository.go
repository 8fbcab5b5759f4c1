package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.CoworkingRepository = (*CoworkingRepo)(nil)

// CoworkingRepo coworkings en memoria.
type CoworkingRepo struct {
	sc scope
}

// Create inserta un coworking.
func (r *CoworkingRepo) Create(ctx context.Context, coworking *entity.Coworking) error {
	return r.sc.do(ctx, func(st *state) error {
		if _, ok := st.coworkings[coworking.ID]; ok {
			return fmt.Errorf("insert coworking: %w", domain.ErrConflict)
		}
		st.coworkings[coworking.ID] = *coworking
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CoworkingRepo) GetByID(ctx context.Context, id string) (*entity.Coworking, error) {
	var out *entity.Coworking
	err := r.sc.do(ctx, func(st *state) error {
		if c, ok := st.coworkings[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

// Update reemplaza el coworking.
func (r *CoworkingRepo) Update(ctx context.Context, coworking *entity.Coworking) error {
	return r.sc.do(ctx, func(st *state) error {
		current, ok := st.coworkings[coworking.ID]
		if !ok {
			return fmt.Errorf("update coworking %s: %w", coworking.ID, domain.ErrNotFound)
		}
		updated := *coworking
		updated.CreatedAt = current.CreatedAt
		st.coworkings[coworking.ID] = updated
		return nil
	})
}

// List filtra por estado (vacío = todos), por nombre.
func (r *CoworkingRepo) List(ctx context.Context, status entity.CoworkingStatus, limit, offset int) ([]*entity.Coworking, int, error) {
	var (
		out   []*entity.Coworking
		total int
	)
	err := r.sc.do(ctx, func(st *state) error {
		all := make([]*entity.Coworking, 0, len(st.coworkings))
		for _, c := range st.coworkings {
			if status != "" && c.Status != status {
				continue
			}
			c := c
			all = append(all, &c)
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].Name != all[j].Name {
				return all[i].Name < all[j].Name
			}
			return all[i].ID < all[j].ID
		})
		total = len(all)
		out = paginate(all, limit, offset)
		return nil
	})
	return out, total, err
}
