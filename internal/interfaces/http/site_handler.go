package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kirankmr450/solairis/internal/application/dto"
	"github.com/kirankmr450/solairis/internal/application/usecase"
	"github.com/kirankmr450/solairis/internal/domain/authz"
)

// SiteHandler maneja las peticiones HTTP de sites (instalaciones).
type SiteHandler struct {
	uc *usecase.SiteUseCase
}

// NewSiteHandler construye el handler.
func NewSiteHandler(uc *usecase.SiteUseCase) *SiteHandler {
	return &SiteHandler{uc: uc}
}

// Create POST /api/sites — solo el CustomerAdmin crea sites bajo su customer.
func (h *SiteHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if err := authz.CanCreateSite(p); err != nil {
		return writeError(c, err)
	}
	var in dto.CreateSiteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(p, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCustomer GET /api/customers/:customerid/sites — los sites de un
// customer, para internos o externos del propio customer.
func (h *SiteHandler) ListByCustomer(c *fiber.Ctx) error {
	id, ok := parseID(c, "customerid")
	if !ok {
		return nil
	}
	out, err := h.uc.ListByCustomer(GetPrincipal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/sites/:siteid — la regla de acceso la resuelve el use case
// (interno, CustomerAdmin, o concesión en el roster).
func (h *SiteHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "siteid")
	if !ok {
		return nil
	}
	out, err := h.uc.Get(GetPrincipal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
