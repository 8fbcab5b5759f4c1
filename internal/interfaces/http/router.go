package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/coco-api/internal/application/auth"
	"github.com/jhoicas/coco-api/internal/application/booking"
	"github.com/jhoicas/coco-api/internal/application/onboarding"
	"github.com/jhoicas/coco-api/internal/application/usecase"
	"github.com/jhoicas/coco-api/internal/domain/entity"
	"github.com/jhoicas/coco-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CompanyUC    *usecase.CompanyUseCase
	CoworkingUC  *usecase.CoworkingUseCase
	RequestUC    *onboarding.RequestUseCase
	ActivationUC *onboarding.ActivationUseCase
	ProvisionUC  *onboarding.ProvisionUseCase
	BookingUC    *booking.UseCase
	JWTSecret    string
}

// NewApp crea la aplicación Fiber con el mapeo de errores de dominio, recover y /health.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
	return app
}

// Router registra las rutas de la API.
// El middleware de auth se aplica por ruta porque públicas y protegidas comparten prefijo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authn := AuthMiddleware(deps.JWTSecret)
	ready := RequirePasswordChanged()
	superAdmin := RequireRole(entity.RoleSuperAdmin)
	companyAdmin := RequireRole(entity.RoleAdminCompany)
	directory := RequireRole(entity.RoleSuperAdmin, entity.RoleAdminCompany)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", authn, authHandler.ChangePassword)
	authGroup.Get("/me", authn, authHandler.Me)

	// Solicitudes de alta (envío público, consulta SUPERADMIN)
	requests := api.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests.Post("/company", requestHandler.SubmitCompany)
	requests.Post("/coworking", requestHandler.SubmitCoworking)
	requests.Get("/", authn, ready, superAdmin, requestHandler.List)
	requests.Get("/:id", authn, ready, superAdmin, requestHandler.GetByID)

	// Companies
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.UserUC, deps.ActivationUC, deps.ProvisionUC)
	companies.Post("/activate", authn, ready, superAdmin, companyHandler.Activate)
	companies.Post("/employees", authn, ready, companyAdmin, companyHandler.ProvisionEmployee)
	companies.Get("/", authn, ready, superAdmin, companyHandler.List)
	companies.Get("/:id", authn, ready, directory, companyHandler.GetByID)
	companies.Put("/:id", authn, ready, directory, companyHandler.Update)
	companies.Put("/:id/users/:userId", authn, ready, companyAdmin, companyHandler.UpdateEmployeeUser)

	// Coworkings (lectura pública)
	coworkings := api.Group("/coworkings")
	coworkingHandler := NewCoworkingHandler(deps.CoworkingUC, deps.ActivationUC)
	coworkings.Get("/", coworkingHandler.List)
	coworkings.Get("/:id", coworkingHandler.GetByID)
	coworkings.Post("/", authn, ready, superAdmin, coworkingHandler.Create)
	coworkings.Post("/activate", authn, ready, superAdmin, coworkingHandler.Activate)
	coworkings.Put("/:id", authn, ready, superAdmin, coworkingHandler.Update)

	// Bookings (cualquier usuario autenticado)
	bookings := api.Group("/bookings", authn, ready)
	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Put("/:id", bookingHandler.Update)
}
