package repository

import "github.com/kirankmr450/solairis/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// SetActive marca active; devuelve domain.ErrUserNotFound si el id no existe.
	SetActive(id string, active bool) error
	// SetActiveByCustomer cascada sobre todos los usuarios del customer.
	SetActiveByCustomer(customerID string, active bool) error
	// SetActiveByCustomerRole limita la cascada a un rol (reactivación del CustomerAdmin).
	SetActiveByCustomerRole(customerID string, role entity.UserRole, active bool) error
	// ListByType lista usuarios de un tipo, excluyendo opcionalmente un rol.
	ListByType(t entity.UserType, excludeRole entity.UserRole) ([]*entity.User, error)
}
