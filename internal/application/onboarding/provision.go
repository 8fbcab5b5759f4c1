package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/application/notification"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/identity"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// ProvisionUseCase alta de empleados por el administrador de su empresa.
type ProvisionUseCase struct {
	stores     Stores
	tx         TxRunner
	issuer     CredentialIssuer
	dispatcher *notification.Dispatcher
	log        *logger.Logger
}

// NewProvisionUseCase construye el caso de uso.
func NewProvisionUseCase(stores Stores, tx TxRunner, issuer CredentialIssuer, dispatcher *notification.Dispatcher, log *logger.Logger) *ProvisionUseCase {
	return &ProvisionUseCase{
		stores:     stores,
		tx:         tx,
		issuer:     issuer,
		dispatcher: dispatcher,
		log:        log.Component("provision"),
	}
}

// Provision crea un usuario EMPLOYEE y su membresía en in.CompanyID.
// El admin que actúa debe ser empleado de esa misma empresa (ErrForbidden).
// Todas las comprobaciones se hacen antes de escribir.
func (uc *ProvisionUseCase) Provision(ctx context.Context, actingAdminID string, in dto.ProvisionEmployeeRequest) (*dto.UserResponse, error) {
	email, err := identity.ValidEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	passes := in.Passes
	available := passes
	if in.PassesAvailable != nil {
		available = *in.PassesAvailable
	}
	if passes < 0 || available < 0 || available > passes {
		return nil, fmt.Errorf("%w: se requiere 0 <= passesAvailable (%d) <= passes (%d)", domain.ErrInvalidInput, available, passes)
	}

	existing, err := uc.stores.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un usuario con email %s", domain.ErrConflict, email)
	}
	admin, err := uc.stores.Employees.GetByUserID(ctx, actingAdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.CompanyID != in.CompanyID {
		return nil, fmt.Errorf("%w: el administrador no pertenece a la empresa %s", domain.ErrForbidden, in.CompanyID)
	}
	company, err := uc.stores.Companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, in.CompanyID)
	}

	plain, hash, err := uc.issuer.Issue()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrHashingFailure, err)
	}

	err = uc.tx.Run(ctx, func(tx Stores) error {
		now := time.Now().UTC()
		user := &entity.User{
			ID:                 uuid.New().String(),
			Name:               strings.TrimSpace(in.Name),
			Lastname:           strings.TrimSpace(in.Lastname),
			Email:              email,
			Phone:              in.Phone,
			Identification:     in.Identification,
			Position:           in.Position,
			PasswordHash:       hash,
			MustChangePassword: true,
			Status:             entity.UserStatusActive,
			Role:               entity.RoleEmployee,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		return tx.Employees.Create(ctx, &entity.Employee{
			ID:              uuid.New().String(),
			UserID:          user.ID,
			CompanyID:       company.ID,
			Passes:          passes,
			PassesAvailable: available,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("company_id", company.ID).Msg("alta de empleado fallida")
		return nil, err
	}

	created, err := uc.stores.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: usuario %s tras el alta", domain.ErrNotFound, email)
	}
	uc.log.Info().Str("company_id", company.ID).Str("user_id", created.ID).Msg("empleado dado de alta")
	uc.dispatcher.Activation(ctx, notification.ActivationNotice{
		Email:       created.Email,
		CompanyName: company.Name,
		Credential:  plain,
	})
	return dto.FromUser(created), nil
}
