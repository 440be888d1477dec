package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kirankmr450/solairis/internal/application/auth"
	"github.com/kirankmr450/solairis/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC     *usecase.UserUseCase
	CustomerUC *usecase.CustomerUseCase
	SiteUC     *usecase.SiteUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios internos (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/internal", userHandler.ListInternal)
	users.Post("/", userHandler.Create)
	users.Post("/activate/:userid", userHandler.Activate)
	users.Post("/deactivate/:userid", userHandler.Deactivate)
	users.Post("/:userid/password", userHandler.UpdatePassword)
	users.Get("/:userid", userHandler.GetByID)
	users.Put("/:userid", userHandler.Update)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	siteHandler := NewSiteHandler(deps.SiteUC)
	customers.Post("/", customerHandler.Create)
	customers.Post("/activate/:customerid", customerHandler.Activate)
	customers.Post("/deactivate/:customerid", customerHandler.Deactivate)
	customers.Post("/users", customerHandler.CreateUser)
	customers.Get("/users", customerHandler.ListOwnUsers)
	customers.Get("/:customerid/users", customerHandler.ListUsersByCustomer)
	customers.Get("/:customerid/sites", siteHandler.ListByCustomer)
	customers.Get("/:customerid", customerHandler.GetByID)

	// Sites (protegido)
	sites := protected.Group("/sites")
	sites.Post("/", siteHandler.Create)
	sites.Get("/:siteid", siteHandler.GetByID)
}
