package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	sc scope
}

// Create inserta un usuario. ErrConflict si el email (sin distinguir caja) ya existe.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.sc.do(ctx, func(st *state) error {
		if _, ok := st.users[user.ID]; ok {
			return fmt.Errorf("insert user: %w", domain.ErrConflict)
		}
		for _, existing := range st.users {
			if sameEmail(existing.Email, user.Email) {
				return fmt.Errorf("insert user: %w", domain.ErrConflict)
			}
		}
		st.users[user.ID] = *user
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.sc.do(ctx, func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.sc.do(ctx, func(st *state) error {
		for _, u := range st.users {
			if sameEmail(u.Email, email) {
				u := u
				out = &u
				return nil
			}
		}
		return nil
	})
	return out, err
}

// GetByIDs omite los ids inexistentes.
func (r *UserRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(ids))
	err := r.sc.do(ctx, func(st *state) error {
		for _, id := range ids {
			if u, ok := st.users[id]; ok {
				out = append(out, &u)
			}
		}
		return nil
	})
	return out, err
}

// Update reemplaza el usuario. El email no cambia.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.sc.do(ctx, func(st *state) error {
		current, ok := st.users[user.ID]
		if !ok {
			return fmt.Errorf("update user %s: %w", user.ID, domain.ErrNotFound)
		}
		updated := *user
		updated.Email = current.Email
		updated.CreatedAt = current.CreatedAt
		st.users[user.ID] = updated
		return nil
	})
}
