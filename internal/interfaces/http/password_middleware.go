package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/coco-api/internal/application/dto"
)

// RequirePasswordChanged bloquea con 403 a quien todavía usa la credencial inicial.
// Se aplica después de AuthMiddleware en todas las rutas protegidas excepto
// /auth/change-password y /auth/me.
func RequirePasswordChanged() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if mustChangePassword(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PASSWORD_CHANGE_REQUIRED",
				Message: "debe cambiar la contraseña inicial antes de continuar",
			})
		}
		return c.Next()
	}
}
