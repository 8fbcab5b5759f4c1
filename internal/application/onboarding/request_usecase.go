package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/identity"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// RequestUseCase recepción y consulta de solicitudes de alta.
type RequestUseCase struct {
	stores Stores
	log    *logger.Logger
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(stores Stores, log *logger.Logger) *RequestUseCase {
	return &RequestUseCase{stores: stores, log: log.Component("requests")}
}

// Submit registra una solicitud PENDING. Devuelve ErrConflict si ya hay una solicitud pendiente
// o un usuario con el mismo email.
func (uc *RequestUseCase) Submit(ctx context.Context, kind entity.RequestKind, in dto.SubmitRequest) (*dto.RequestResponse, error) {
	if kind != entity.RequestKindCompany && kind != entity.RequestKindCoworking {
		return nil, fmt.Errorf("%w: tipo de solicitud %q", domain.ErrInvalidInput, kind)
	}
	email, err := identity.ValidEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.CompanyName) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: companyName y name son obligatorios", domain.ErrInvalidInput)
	}

	pending, err := uc.stores.Requests.GetPendingByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, fmt.Errorf("%w: ya existe una solicitud pendiente para %s", domain.ErrConflict, email)
	}
	user, err := uc.stores.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return nil, fmt.Errorf("%w: ya existe un usuario con email %s", domain.ErrConflict, email)
	}

	now := time.Now().UTC()
	req := &entity.Request{
		ID:          uuid.New().String(),
		Kind:        kind,
		Email:       email,
		CompanyName: strings.TrimSpace(in.CompanyName),
		Name:        strings.TrimSpace(in.Name),
		Lastname:    strings.TrimSpace(in.Lastname),
		Phone:       in.Phone,
		Position:    in.Position,
		Size:        in.Size,
		Status:      entity.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.stores.Requests.Create(ctx, req); err != nil {
		return nil, err
	}
	uc.log.Info().Str("request_id", req.ID).Str("kind", string(kind)).Msg("solicitud registrada")
	return dto.FromRequest(req), nil
}

// GetByID obtiene una solicitud. Devuelve ErrNotFound si no existe.
func (uc *RequestUseCase) GetByID(ctx context.Context, id string) (*dto.RequestResponse, error) {
	req, err := uc.stores.Requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, id)
	}
	return dto.FromRequest(req), nil
}

// List lista solicitudes filtradas por estado y tipo, más recientes primero.
func (uc *RequestUseCase) List(ctx context.Context, filter entity.RequestFilter, page dto.PageRequest) (*dto.RequestListResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	list, total, err := uc.stores.Requests.List(ctx, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.RequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *dto.FromRequest(r))
	}
	return &dto.RequestListResponse{Page: page.Page, Limit: page.Limit, Total: total, Requests: items}, nil
}
