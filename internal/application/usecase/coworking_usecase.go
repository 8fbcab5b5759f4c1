package usecase

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
	"github.com/jhoicas/coco-api/internal/domain/repository"
	"github.com/jhoicas/coco-api/internal/domain/schedule"
)

// CoworkingUseCase directorio de coworkings.
type CoworkingUseCase struct {
	repo repository.CoworkingRepository
}

// NewCoworkingUseCase construye el caso de uso con el puerto de persistencia.
func NewCoworkingUseCase(repo repository.CoworkingRepository) *CoworkingUseCase {
	return &CoworkingUseCase{repo: repo}
}

// Create da de alta un coworking PENDING. El horario debe cumplir open <= close.
func (uc *CoworkingUseCase) Create(ctx context.Context, in dto.CreateCoworkingRequest) (*dto.CoworkingResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, fmt.Errorf("%w: name y address son obligatorios", domain.ErrInvalidInput)
	}
	email, err := identity.ValidEmail(in.Email)
	if err != nil {
		return nil, err
	}
	window, err := schedule.NewWindow(in.Open, in.Close)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	cw := &entity.Coworking{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Address:   strings.TrimSpace(in.Address),
		Email:     email,
		Phone:     in.Phone,
		Open:      schedule.Format(window.Open),
		Close:     schedule.Format(window.Close),
		Status:    entity.CoworkingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, cw); err != nil {
		return nil, err
	}
	return dto.FromCoworking(cw), nil
}

// GetByID obtiene un coworking. ErrNotFound si no existe.
func (uc *CoworkingUseCase) GetByID(ctx context.Context, id string) (*dto.CoworkingResponse, error) {
	cw, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cw == nil {
		return nil, fmt.Errorf("%w: coworking %s", domain.ErrNotFound, id)
	}
	return dto.FromCoworking(cw), nil
}

// List lista coworkings por nombre; status vacío no filtra.
func (uc *CoworkingUseCase) List(ctx context.Context, status entity.CoworkingStatus, page dto.PageRequest) (*dto.CoworkingListResponse, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.List(ctx, status, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CoworkingResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.FromCoworking(c))
	}
	return &dto.CoworkingListResponse{Page: page.Page, Limit: page.Limit, Total: total, Coworkings: items}, nil
}

// Update aplica un merge y vuelve a exigir open <= close con el horario resultante.
func (uc *CoworkingUseCase) Update(ctx context.Context, id string, in dto.UpdateCoworkingRequest) (*dto.CoworkingResponse, error) {
	cw, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cw == nil {
		return nil, fmt.Errorf("%w: coworking %s", domain.ErrNotFound, id)
	}
	if in.Name != nil {
		cw.Name = *in.Name
	}
	if in.Address != nil {
		cw.Address = *in.Address
	}
	if in.Email != nil {
		email, err := identity.ValidEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		cw.Email = email
	}
	if in.Phone != nil {
		cw.Phone = *in.Phone
	}
	if in.Open != nil {
		cw.Open = *in.Open
	}
	if in.Close != nil {
		cw.Close = *in.Close
	}
	window, err := schedule.NewWindow(cw.Open, cw.Close)
	if err != nil {
		return nil, err
	}
	cw.Open, cw.Close = schedule.Format(window.Open), schedule.Format(window.Close)
	if in.Status != nil {
		status := entity.CoworkingStatus(*in.Status)
		switch status {
		case entity.CoworkingStatusPending, entity.CoworkingStatusActive, entity.CoworkingStatusInactive:
			cw.Status = status
		default:
			return nil, fmt.Errorf("%w: estado de coworking %q", domain.ErrInvalidInput, *in.Status)
		}
	}
	cw.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, cw); err != nil {
		return nil, err
	}
	return dto.FromCoworking(cw), nil
}
