package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kirankmr450/solairis/internal/application/dto"
	"github.com/kirankmr450/solairis/internal/application/usecase"
	"github.com/kirankmr450/solairis/internal/domain/authz"
)

// CustomerHandler maneja las peticiones HTTP del directorio de customers.
// Cada handler evalúa primero el gate de autorización y después delega.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers — solo Root o Admin interno.
// Junto al customer nace su CustomerAdmin con el mismo email.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	if err := authz.CanCreateCustomer(GetPrincipal(c)); err != nil {
		return writeError(c, err)
	}
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Activate POST /api/customers/activate/:customerid
func (h *CustomerHandler) Activate(c *fiber.Ctx) error {
	if err := authz.CanSetCustomerActive(GetPrincipal(c)); err != nil {
		return writeError(c, err)
	}
	id, ok := parseID(c, "customerid")
	if !ok {
		return nil
	}
	if err := h.uc.Activate(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "customer activado"})
}

// Deactivate POST /api/customers/deactivate/:customerid
func (h *CustomerHandler) Deactivate(c *fiber.Ctx) error {
	if err := authz.CanSetCustomerActive(GetPrincipal(c)); err != nil {
		return writeError(c, err)
	}
	id, ok := parseID(c, "customerid")
	if !ok {
		return nil
	}
	if err := h.uc.Deactivate(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "customer desactivado"})
}

// GetByID GET /api/customers/:customerid — proyección según el principal.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "customerid")
	if !ok {
		return nil
	}
	p := GetPrincipal(c)
	if err := authz.CanViewCustomer(p, id); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Projection(id, p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateUser POST /api/customers/users — alta de usuario externo bajo el
// customer del llamador.
func (h *CustomerHandler) CreateUser(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := authz.CanCreateCustomerUser(p); err != nil {
		return writeError(c, err)
	}
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.CreateUser(p, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListOwnUsers GET /api/customers/users — usuarios del customer del llamador.
func (h *CustomerHandler) ListOwnUsers(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := authz.CanListOwnCustomerUsers(p); err != nil {
		return writeError(c, err)
	}
	users, err := h.uc.ListOwnUsers(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

// ListUsersByCustomer GET /api/customers/:customerid/users — uso interno.
func (h *CustomerHandler) ListUsersByCustomer(c *fiber.Ctx) error {
	if err := authz.CanListCustomerUsers(GetPrincipal(c)); err != nil {
		return writeError(c, err)
	}
	id, ok := parseID(c, "customerid")
	if !ok {
		return nil
	}
	users, err := h.uc.ListUsersByCustomer(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}
