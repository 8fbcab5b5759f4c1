package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coco-api/internal/application/dto"
	"github.com/jhoicas/coco-api/internal/domain"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// errorKind traducción de un error de dominio a status HTTP y código estable.
type errorKind struct {
	target error
	status int
	code   string
}

var errorKinds = []errorKind{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrInvalidState, fiber.StatusConflict, "INVALID_STATE"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrOutOfHours, fiber.StatusBadRequest, "OUT_OF_HOURS"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrHashingFailure, fiber.StatusInternalServerError, "HASHING_FAILURE"},
}

// ErrorHandler handler de errores de Fiber: los handlers devuelven el error del caso de uso
// y aquí se decide el status. Los errores no clasificados se registran y responden 500 sin detalle.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		for _, k := range errorKinds {
			if errors.Is(err, k.target) {
				if k.status >= fiber.StatusInternalServerError {
					log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
				}
				return c.Status(k.status).JSON(dto.ErrorResponse{Code: k.code, Message: err.Error()})
			}
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}

		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// invalidBody error para cuerpos JSON que no se pueden parsear.
func invalidBody(err error) error {
	return fmt.Errorf("%w: cuerpo inválido: %v", domain.ErrInvalidInput, err)
}
