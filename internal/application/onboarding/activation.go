package onboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/schedule"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// ActivationUseCase convierte una solicitud pendiente en una cuenta activa.
// Todas las escrituras van en una sola transacción y la notificación sale después del commit.
type ActivationUseCase struct {
	stores     Stores
	tx         TxRunner
	issuer     CredentialIssuer
	dispatcher *notification.Dispatcher
	log        *logger.Logger
}

// NewActivationUseCase construye el caso de uso.
func NewActivationUseCase(stores Stores, tx TxRunner, issuer CredentialIssuer, dispatcher *notification.Dispatcher, log *logger.Logger) *ActivationUseCase {
	return &ActivationUseCase{
		stores:     stores,
		tx:         tx,
		issuer:     issuer,
		dispatcher: dispatcher,
		log:        log.Component("activation"),
	}
}

// Activate activa una solicitud de empresa: crea el usuario ADMIN_COMPANY, la empresa ACCEPTED,
// la membresía del admin (1 pase) y cierra la solicitud.
// Errores: ErrInvalidState (inexistente, cerrada o de otro tipo), ErrConflict (email en uso),
// ErrHashingFailure. Si falla, la solicitud queda PENDING.
func (uc *ActivationUseCase) Activate(ctx context.Context, requestID string) (*dto.CompanyResponse, error) {
	req, err := uc.precheck(ctx, requestID, entity.RequestKindCompany)
	if err != nil {
		return nil, err
	}
	plain, hash, err := uc.issue()
	if err != nil {
		return nil, err
	}

	var company *entity.Company
	err = uc.tx.Run(ctx, func(tx Stores) error {
		locked, err := uc.lock(ctx, tx, req.ID, entity.RequestKindCompany)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		user := newAccount(locked, entity.RoleAdminCompany, hash, now)
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		company = &entity.Company{
			ID:          uuid.New().String(),
			Name:        locked.CompanyName,
			Phone:       locked.Phone,
			Email:       locked.Email,
			Size:        locked.Size,
			Status:      entity.CompanyStatusAccepted,
			TotalPasses: 0,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.Companies.Create(ctx, company); err != nil {
			return err
		}
		employee := &entity.Employee{
			ID:              uuid.New().String(),
			UserID:          user.ID,
			CompanyID:       company.ID,
			Passes:          1,
			PassesAvailable: 1,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Employees.Create(ctx, employee); err != nil {
			return err
		}
		return tx.Requests.UpdateStatus(ctx, locked.ID, entity.RequestStatusClosed)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("request_id", requestID).Msg("activación de empresa fallida")
		return nil, err
	}

	uc.log.Info().Str("request_id", req.ID).Str("company_id", company.ID).Msg("empresa activada")
	uc.dispatcher.Activation(ctx, notification.ActivationNotice{
		Email:       company.Email,
		CompanyName: company.Name,
		Credential:  plain,
	})
	return dto.FromCompany(company), nil
}

// ActivateCoworking activa una solicitud de operador: crea el usuario ADMIN_COWORKING y el
// coworking ACTIVE con el horario indicado, y cierra la solicitud.
func (uc *ActivationUseCase) ActivateCoworking(ctx context.Context, in dto.ActivateCoworkingRequest) (*dto.CoworkingResponse, error) {
	window, err := schedule.NewWindow(in.Open, in.Close)
	if err != nil {
		return nil, err
	}
	if in.Address == "" {
		return nil, fmt.Errorf("%w: address es obligatorio", domain.ErrInvalidInput)
	}
	req, err := uc.precheck(ctx, in.ID, entity.RequestKindCoworking)
	if err != nil {
		return nil, err
	}
	plain, hash, err := uc.issue()
	if err != nil {
		return nil, err
	}

	var coworking *entity.Coworking
	err = uc.tx.Run(ctx, func(tx Stores) error {
		locked, err := uc.lock(ctx, tx, req.ID, entity.RequestKindCoworking)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if err := tx.Users.Create(ctx, newAccount(locked, entity.RoleAdminCoworking, hash, now)); err != nil {
			return err
		}
		coworking = &entity.Coworking{
			ID:        uuid.New().String(),
			Name:      locked.CompanyName,
			Address:   in.Address,
			Email:     locked.Email,
			Phone:     locked.Phone,
			Open:      schedule.Format(window.Open),
			Close:     schedule.Format(window.Close),
			Status:    entity.CoworkingStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Coworkings.Create(ctx, coworking); err != nil {
			return err
		}
		return tx.Requests.UpdateStatus(ctx, locked.ID, entity.RequestStatusClosed)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("request_id", in.ID).Msg("activación de coworking fallida")
		return nil, err
	}

	uc.log.Info().Str("request_id", req.ID).Str("coworking_id", coworking.ID).Msg("coworking activado")
	uc.dispatcher.Activation(ctx, notification.ActivationNotice{
		Email:       coworking.Email,
		CompanyName: coworking.Name,
		Credential:  plain,
	})
	return dto.FromCoworking(coworking), nil
}

// precheck valida las precondiciones antes de abrir la transacción.
func (uc *ActivationUseCase) precheck(ctx context.Context, requestID string, kind entity.RequestKind) (*entity.Request, error) {
	req, err := uc.stores.Requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := checkActivable(req, requestID, kind); err != nil {
		return nil, err
	}
	if err := ensureEmailFree(ctx, uc.stores, req.Email); err != nil {
		return nil, err
	}
	return req, nil
}

// lock relee la solicitud con bloqueo de fila y repite las comprobaciones: otra activación
// concurrente pudo cerrarla entre el precheck y el inicio de la transacción.
func (uc *ActivationUseCase) lock(ctx context.Context, tx Stores, requestID string, kind entity.RequestKind) (*entity.Request, error) {
	req, err := tx.Requests.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := checkActivable(req, requestID, kind); err != nil {
		return nil, err
	}
	if err := ensureEmailFree(ctx, tx, req.Email); err != nil {
		return nil, err
	}
	return req, nil
}

func (uc *ActivationUseCase) issue() (string, string, error) {
	plain, hash, err := uc.issuer.Issue()
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrHashingFailure, err)
	}
	return plain, hash, nil
}

func checkActivable(req *entity.Request, requestID string, kind entity.RequestKind) error {
	if req == nil || req.Status != entity.RequestStatusPending {
		return fmt.Errorf("%w: la solicitud %s ya fue procesada o no existe", domain.ErrInvalidState, requestID)
	}
	if req.Kind != kind {
		return fmt.Errorf("%w: la solicitud %s es de tipo %s", domain.ErrInvalidState, requestID, req.Kind)
	}
	return nil
}

func ensureEmailFree(ctx context.Context, s Stores, email string) error {
	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: ya existe un usuario con email %s", domain.ErrConflict, email)
	}
	return nil
}

// newAccount usuario inicial a partir de una solicitud. Debe cambiar la contraseña en el primer login.
func newAccount(req *entity.Request, role entity.Role, hash string, now time.Time) *entity.User {
	return &entity.User{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		Lastname:           req.Lastname,
		Email:              req.Email,
		Phone:              req.Phone,
		Position:           req.Position,
		PasswordHash:       hash,
		MustChangePassword: true,
		Status:             entity.UserStatusActive,
		Role:               role,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
