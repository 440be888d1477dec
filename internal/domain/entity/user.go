package entity

import "time"

// UserType distingue personal interno de cuentas afiliadas a un cliente.
type UserType string

const (
	UserTypeInternal UserType = "internal-user"
	UserTypeExternal UserType = "external-user"
)

// UserRole rol de un usuario. El conjunto válido depende del UserType.
type UserRole string

const (
	// RoleRoot no pertenece a ningún tipo: super-rol de máximo privilegio.
	RoleRoot     UserRole = "Root"
	RoleAdmin    UserRole = "Admin"
	RoleOperator UserRole = "Operator"

	RoleCustomerAdmin UserRole = "CustomerAdmin"
	RoleSiteAdmin     UserRole = "SiteAdmin"
	RoleSiteEngineer  UserRole = "SiteEngineer"
	// RoleNotAssigned usuario externo aún sin rol asignado en ningún site.
	RoleNotAssigned UserRole = "NA"
)

// rolesByType conjuntos de roles válidos por tipo de usuario.
var rolesByType = map[UserType][]UserRole{
	UserTypeInternal: {RoleAdmin, RoleOperator},
	UserTypeExternal: {RoleCustomerAdmin, RoleSiteAdmin, RoleSiteEngineer, RoleNotAssigned},
}

// IsValidRole indica si role es miembro del conjunto válido para type.
// Root es válido independientemente del tipo.
func IsValidRole(t UserType, role UserRole) bool {
	if role == RoleRoot {
		return true
	}
	for _, r := range rolesByType[t] {
		if r == role {
			return true
		}
	}
	return false
}

// RequiresRole indica si el tipo exige un rol almacenado en el propio usuario.
// Solo los internos: el privilegio efectivo de un externo se deriva del roster
// de su Customer/Sites, salvo CustomerAdmin que sí se guarda en el usuario.
func RequiresRole(t UserType) bool {
	return t == UserTypeInternal
}

// User representa un usuario del sistema, interno o externo.
type User struct {
	ID           string
	Name         string
	Type         UserType
	Role         UserRole // requerido si Type es interno; CustomerAdmin o NA si externo
	CustomerID   string   // vacío para usuarios internos
	Email        string   // único a nivel global
	PhoneNumber  string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	IsNewUser    bool
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
