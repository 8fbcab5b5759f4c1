package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con fmt.Errorf("%w: ...") para dar contexto;
// la capa HTTP los distingue con errors.Is.
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrConflict       = errors.New("conflicto: el recurso ya existe")
	ErrInvalidState   = errors.New("estado inválido para la operación")
	ErrForbidden      = errors.New("acceso denegado")
	ErrOutOfHours     = errors.New("hora fuera del horario del coworking")
	ErrHashingFailure = errors.New("no se pudo aplicar hash a la contraseña")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
)
