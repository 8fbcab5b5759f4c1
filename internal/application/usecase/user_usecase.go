package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
)

// UserUseCase consultas de usuarios y mantenimiento de empleados por su admin.
type UserUseCase struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, employees repository.EmployeeRepository) *UserUseCase {
	return &UserUseCase{users: users, employees: employees}
}

// GetByID obtiene un usuario. ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, id)
	}
	return dto.FromUser(user), nil
}

// UpdateEmployeeUser actualiza los datos de un empleado. El admin y el usuario destino deben
// pertenecer a companyID; si no, ErrForbidden. El email y el rol no se modifican.
func (uc *UserUseCase) UpdateEmployeeUser(ctx context.Context, actingAdminID, companyID, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := uc.requireMember(ctx, actingAdminID, companyID); err != nil {
		return nil, err
	}
	if err := uc.requireMember(ctx, userID, companyID); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, userID)
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Lastname != nil {
		user.Lastname = *in.Lastname
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Identification != nil {
		user.Identification = *in.Identification
	}
	if in.Position != nil {
		user.Position = *in.Position
	}
	if in.Status != nil {
		status := entity.UserStatus(*in.Status)
		if status != entity.UserStatusActive && status != entity.UserStatusInactive {
			return nil, fmt.Errorf("%w: estado de usuario %q", domain.ErrInvalidInput, *in.Status)
		}
		user.Status = status
	}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.FromUser(user), nil
}

func (uc *UserUseCase) requireMember(ctx context.Context, userID, companyID string) error {
	emp, err := uc.employees.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if emp == nil || emp.CompanyID != companyID {
		return fmt.Errorf("%w: el usuario %s no pertenece a la empresa %s", domain.ErrForbidden, userID, companyID)
	}
	return nil
}
