package repository

import "github.com/kirankmr450/solairis/internal/domain/entity"

// SiteRepository define el puerto de persistencia para Site.
type SiteRepository interface {
	Create(site *entity.Site) error
	// GetByID devuelve (nil, nil) cuando el site no existe.
	GetByID(id string) (*entity.Site, error)
	ListByCustomer(customerID string) ([]*entity.Site, error)
}
