package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kirankmr450/solairis/internal/application/dto"
	"github.com/kirankmr450/solairis/internal/domain/authz"
	"github.com/kirankmr450/solairis/internal/domain/entity"
	"github.com/kirankmr450/solairis/pkg/jwt"
)

// localPrincipal key del principal en c.Locals.
const localPrincipal = "principal"

// AuthMiddleware valida el Bearer Token JWT y deja el principal autenticado
// en c.Locals para que los handlers evalúen el gate de autorización.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(localPrincipal, authz.Principal{
			UserID:     claims.UserID,
			Type:       entity.UserType(claims.UserType),
			Role:       entity.UserRole(claims.Role),
			CustomerID: claims.CustomerID,
		})
		return c.Next()
	}
}

// GetPrincipal devuelve el principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) authz.Principal {
	v := c.Locals(localPrincipal)
	if v == nil {
		return authz.Principal{}
	}
	p, _ := v.(authz.Principal)
	return p
}
