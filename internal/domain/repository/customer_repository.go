package repository

import "github.com/kirankmr450/solairis/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	// GetByID devuelve (nil, nil) cuando el customer no existe.
	GetByID(id string) (*entity.Customer, error)
	// SetActive marca active; devuelve domain.ErrMissingItem si el id no existe.
	SetActive(id string, active bool) error
	// AddRosterEntry añade la entrada al roster con un update atómico.
	AddRosterEntry(customerID string, entry entity.RosterEntry) error
	// AddSite registra el id de un site recién creado en el customer.
	AddSite(customerID, siteID string) error
}
