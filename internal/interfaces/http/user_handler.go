package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kirankmr450/solairis/internal/application/dto"
	"github.com/kirankmr450/solairis/internal/application/usecase"
	"github.com/kirankmr450/solairis/internal/domain/entity"
)

// UserHandler maneja las peticiones HTTP del directorio de usuarios internos.
// Los usuarios externos se crean vía las rutas de customer.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create POST /api/users — alta de usuario interno.
// Sin guard en la ruta, como en el resto del directorio de internos: el
// chequeo de admin sigue pendiente de definirse.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Type == "" {
		in.Type = entity.UserTypeInternal
	}
	user, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListInternal GET /api/users/internal — Root no aparece en el listado.
func (h *UserHandler) ListInternal(c *fiber.Ctx) error {
	users, err := h.uc.ListInternal(entity.RoleRoot)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}

// GetByID GET /api/users/:userid
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "userid")
	if !ok {
		return nil
	}
	user, err := h.uc.GetPublic(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// Update PUT /api/users/:userid — actualización parcial de name/phone.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "userid")
	if !ok {
		return nil
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(user)
}

// UpdatePassword POST /api/users/:userid/password
// El chequeo de que el llamador es el propio usuario corre por cuenta del
// llamador; el use case no verifica propiedad.
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	id, ok := parseID(c, "userid")
	if !ok {
		return nil
	}
	var in dto.UpdatePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdatePassword(id, in.Password); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}

// Activate POST /api/users/activate/:userid
func (h *UserHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true, "usuario activado")
}

// Deactivate POST /api/users/deactivate/:userid
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false, "usuario desactivado")
}

func (h *UserHandler) setActive(c *fiber.Ctx, active bool, msg string) error {
	id, ok := parseID(c, "userid")
	if !ok {
		return nil
	}
	if err := h.uc.SetActive(id, active); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}
