// Package authz contiene el principal autenticado y las reglas de
// autorización por acción. Decisiones puras: nil permite, ErrForbidden deniega.
package authz

import (
	"fmt"

	"github.com/kirankmr450/solairis/internal/domain"
	"github.com/kirankmr450/solairis/internal/domain/entity"
)

// Principal actor autenticado que emite la petición. Lo construye el
// middleware de auth a partir de los claims del token.
type Principal struct {
	UserID     string
	Type       entity.UserType
	Role       entity.UserRole
	CustomerID string // vacío para usuarios internos
}

func deny(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrForbidden, reason)
}

// CanCreateCustomer solo Root o Admin interno pueden crear customers.
func CanCreateCustomer(p Principal) error {
	if p.Type == entity.UserTypeExternal || p.Role == entity.RoleOperator {
		return deny("crear customers requiere Root o Admin interno")
	}
	return nil
}

// CanSetCustomerActive misma regla que la creación: Root o Admin interno.
func CanSetCustomerActive(p Principal) error {
	if p.Type == entity.UserTypeExternal || p.Role == entity.RoleOperator {
		return deny("activar o desactivar customers requiere Root o Admin interno")
	}
	return nil
}

// CanViewCustomer un interno ve cualquier customer; un externo solo el suyo.
func CanViewCustomer(p Principal, customerID string) error {
	if p.Type == entity.UserTypeExternal && p.CustomerID != customerID {
		return deny("un usuario externo solo puede consultar su propio customer")
	}
	return nil
}

// CanCreateCustomerUser crea sub-usuarios bajo el customer del principal.
// Permite a cualquier externo EXCEPTO al CustomerAdmin. La condición parece
// invertida pero los clientes dependen de ella; pendiente de aclaración de
// producto antes de tocarla.
func CanCreateCustomerUser(p Principal) error {
	if p.Type != entity.UserTypeExternal || p.Role == entity.RoleCustomerAdmin {
		return deny("crear usuarios del customer requiere un usuario externo no administrador")
	}
	return nil
}

// CanListOwnCustomerUsers solo el CustomerAdmin lista los usuarios de su customer.
func CanListOwnCustomerUsers(p Principal) error {
	if p.Type != entity.UserTypeExternal || p.Role != entity.RoleCustomerAdmin {
		return deny("listar usuarios del propio customer requiere CustomerAdmin")
	}
	return nil
}

// CanListCustomerUsers listar usuarios de un customer arbitrario es de internos.
func CanListCustomerUsers(p Principal) error {
	if p.Type != entity.UserTypeInternal {
		return deny("listar usuarios por customer requiere un usuario interno")
	}
	return nil
}

// CanCreateSite solo el CustomerAdmin crea sites bajo su customer.
func CanCreateSite(p Principal) error {
	if p.Role != entity.RoleCustomerAdmin {
		return deny("crear sites requiere CustomerAdmin")
	}
	return nil
}

// CanViewSite un interno o el CustomerAdmin ven cualquier site; el resto de
// externos necesita una entrada en el roster que le conceda ese site.
// grants son las concesiones del principal resueltas por el llamador
// (vacío si no tiene entrada en el roster).
func CanViewSite(p Principal, siteID string, grants []entity.SiteGrant) error {
	if p.Type == entity.UserTypeInternal || p.Role == entity.RoleCustomerAdmin {
		return nil
	}
	for _, g := range grants {
		if g.SiteID == siteID {
			return nil
		}
	}
	return deny("el usuario no tiene rol asignado en este site")
}
