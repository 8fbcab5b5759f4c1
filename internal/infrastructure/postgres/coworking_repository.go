package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.CoworkingRepository = (*CoworkingRepo)(nil)

const coworkingColumns = `id, name, address, email, phone, open, close, status, created_at, updated_at`

// CoworkingRepo implementación de CoworkingRepository sobre PostgreSQL.
type CoworkingRepo struct {
	q Querier
}

// NewCoworkingRepository construye el adaptador. Pasar pool o tx.
func NewCoworkingRepository(q Querier) *CoworkingRepo {
	return &CoworkingRepo{q: q}
}

// Create persiste un coworking.
func (r *CoworkingRepo) Create(ctx context.Context, c *entity.Coworking) error {
	query := `INSERT INTO coworkings (` + coworkingColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Address, c.Email, c.Phone, c.Open, c.Close, c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return wrapWrite("insert coworking", err)
	}
	return nil
}

// GetByID obtiene un coworking o (nil, nil).
func (r *CoworkingRepo) GetByID(ctx context.Context, id string) (*entity.Coworking, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanCoworking(r.q.QueryRow(ctx, `SELECT `+coworkingColumns+` FROM coworkings WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coworking: %w", err)
	}
	return c, nil
}

// Update actualiza un coworking existente.
func (r *CoworkingRepo) Update(ctx context.Context, c *entity.Coworking) error {
	query := `
		UPDATE coworkings SET name = $2, address = $3, email = $4, phone = $5, open = $6, close = $7,
			status = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Address, c.Email, c.Phone, c.Open, c.Close, c.Status, c.UpdatedAt)
	if err != nil {
		return wrapWrite("update coworking", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update coworking %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// List coworkings por nombre; status vacío no filtra.
func (r *CoworkingRepo) List(ctx context.Context, status entity.CoworkingStatus, limit, offset int) ([]*entity.Coworking, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM coworkings WHERE ($1 = '' OR status = $1)`, string(status)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count coworkings: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+coworkingColumns+` FROM coworkings
		WHERE ($1 = '' OR status = $1)
		ORDER BY name, id LIMIT $2 OFFSET $3`, string(status), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list coworkings: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Coworking, 0, limit)
	for rows.Next() {
		c, err := scanCoworking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan coworking: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func scanCoworking(row pgx.Row) (*entity.Coworking, error) {
	var c entity.Coworking
	err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Email, &c.Phone, &c.Open, &c.Close, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
