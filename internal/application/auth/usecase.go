package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/internal/domain/identity"
	"github.com/jhoicas/coco-api/internal/domain/repository"
	"github.com/jhoicas/coco-api/pkg/credential"
	"github.com/jhoicas/coco-api/pkg/jwt"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// MinPasswordLength longitud mínima de una contraseña elegida por el usuario.
const MinPasswordLength = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y cambio de contraseña.
type AuthUseCase struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	hasher    credential.Hasher
	jwtCfg    JWTConfig
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, employees repository.EmployeeRepository, hasher credential.Hasher, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, employees: employees, hasher: hasher, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// El token lleva la empresa del usuario cuando es empleado de alguna.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, identity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || uc.hasher.Compare(user.PasswordHash, in.Password) != nil {
		return nil, fmt.Errorf("%w: credenciales inválidas", domain.ErrUnauthorized)
	}
	if user.Status != entity.UserStatusActive {
		return nil, fmt.Errorf("%w: usuario inactivo", domain.ErrForbidden)
	}
	sub := jwt.Subject{UserID: user.ID, Role: string(user.Role), MustChangePassword: user.MustChangePassword}
	emp, err := uc.employees.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if emp != nil {
		sub.CompanyID = emp.CompanyID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, sub, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.FromUser(user),
	}, nil
}

// ChangePassword verifica la contraseña actual, guarda el hash de la nueva y levanta la
// obligación de cambio de la credencial inicial.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < MinPasswordLength {
		return fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}
	if in.NewPassword == in.CurrentPassword {
		return fmt.Errorf("%w: la nueva contraseña debe ser distinta de la actual", domain.ErrInvalidInput)
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: usuario %s", domain.ErrNotFound, userID)
	}
	if err := uc.hasher.Compare(user.PasswordHash, in.CurrentPassword); err != nil {
		return fmt.Errorf("%w: contraseña actual incorrecta", domain.ErrUnauthorized)
	}
	hash, err := uc.hasher.Hash(in.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrHashingFailure, err)
	}
	user.PasswordHash = hash
	user.MustChangePassword = false
	user.UpdatedAt = time.Now().UTC()
	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("contraseña actualizada")
	return nil
}
