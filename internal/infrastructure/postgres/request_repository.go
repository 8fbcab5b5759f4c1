package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

const requestColumns = `id, kind, email, company_name, name, lastname, phone, position, size, status, created_at, updated_at`

// RequestRepo implementación de RequestRepository sobre PostgreSQL.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador. Pasar pool o tx.
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create persiste la solicitud. El índice parcial sobre PENDING convierte duplicados en domain.ErrConflict.
func (r *RequestRepo) Create(ctx context.Context, req *entity.Request) error {
	query := `INSERT INTO requests (` + requestColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.Kind, req.Email, req.CompanyName, req.Name, req.Lastname,
		req.Phone, req.Position, req.Size, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return wrapWrite("insert request", err)
	}
	return nil
}

// GetByID obtiene la solicitud o (nil, nil).
func (r *RequestRepo) GetByID(ctx context.Context, id string) (*entity.Request, error) {
	return r.get(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
}

// GetForUpdate obtiene la solicitud y bloquea la fila para update (SELECT FOR UPDATE).
func (r *RequestRepo) GetForUpdate(ctx context.Context, id string) (*entity.Request, error) {
	return r.get(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *RequestRepo) get(ctx context.Context, query, id string) (*entity.Request, error) {
	if !validID(id) {
		return nil, nil
	}
	req, err := scanRequest(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

// GetPendingByEmail solicitud PENDING con ese email o (nil, nil).
func (r *RequestRepo) GetPendingByEmail(ctx context.Context, email string) (*entity.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE lower(email) = lower($1) AND status = 'PENDING'`
	req, err := scanRequest(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pending request: %w", err)
	}
	return req, nil
}

// UpdateStatus cambia el estado de la solicitud.
func (r *RequestRepo) UpdateStatus(ctx context.Context, id string, status entity.RequestStatus) error {
	cmd, err := r.q.Exec(ctx, `UPDATE requests SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return wrapWrite("update request", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update request %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List filtra por estado y tipo, created_at DESC.
func (r *RequestRepo) List(ctx context.Context, filter entity.RequestFilter, limit, offset int) ([]*entity.Request, int, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		where = append(where, fmt.Sprintf("kind = $%d", len(args)))
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM requests`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM requests%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		requestColumns, cond, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Request, 0, limit)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, req)
	}
	return list, total, rows.Err()
}

func scanRequest(row pgx.Row) (*entity.Request, error) {
	var req entity.Request
	err := row.Scan(&req.ID, &req.Kind, &req.Email, &req.CompanyName, &req.Name, &req.Lastname,
		&req.Phone, &req.Position, &req.Size, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
