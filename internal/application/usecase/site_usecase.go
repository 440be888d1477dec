package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kirankmr450/solairis/internal/application/dto"
	"github.com/kirankmr450/solairis/internal/domain"
	"github.com/kirankmr450/solairis/internal/domain/authz"
	"github.com/kirankmr450/solairis/internal/domain/entity"
	"github.com/kirankmr450/solairis/internal/domain/repository"
)

// SiteUseCase directorio de sites: instalaciones de un customer con su
// propio roster y listas de equipos.
type SiteUseCase struct {
	repo         repository.SiteRepository
	customerRepo repository.CustomerRepository
}

// NewSiteUseCase construye el caso de uso.
func NewSiteUseCase(repo repository.SiteRepository, customerRepo repository.CustomerRepository) *SiteUseCase {
	return &SiteUseCase{repo: repo, customerRepo: customerRepo}
}

// Create crea un site bajo el customer del principal y registra su id en el
// customer. Dos escrituras sin transacción, como el resto de cascadas.
func (uc *SiteUseCase) Create(p authz.Principal, in dto.CreateSiteRequest) (*dto.SiteResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"name\"", domain.ErrInvalidInput)
	}
	customer, err := uc.customerRepo.GetByID(p.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrMissingItem
	}

	var address entity.Address
	if in.Address != nil {
		address = *in.Address
	}
	now := time.Now()
	site := &entity.Site{
		ID:           uuid.New().String(),
		Name:         in.Name,
		CustomerID:   customer.ID,
		Users:        []entity.SiteUser{},
		CapacityKW:   in.CapacityKW,
		PanelCount:   in.PanelCount,
		BatteryCount: in.BatteryCount,
		Inverters:    in.Inverters,
		Meters:       in.Meters,
		Address:      address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(site); err != nil {
		return nil, err
	}
	if err := uc.customerRepo.AddSite(customer.ID, site.ID); err != nil {
		return nil, err
	}
	return toSiteResponse(site), nil
}

// Get obtiene un site aplicando la regla de acceso: interno o CustomerAdmin
// ven cualquier site; el resto de externos necesita una concesión en el
// roster de su customer.
func (uc *SiteUseCase) Get(p authz.Principal, siteID string) (*dto.SiteResponse, error) {
	var grants []entity.SiteGrant
	if p.Type == entity.UserTypeExternal && p.Role != entity.RoleCustomerAdmin {
		customer, err := uc.customerRepo.GetByID(p.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrMissingItem
		}
		if e := customer.RosterEntryFor(p.UserID); e != nil {
			grants = e.Sites
		}
	}
	if err := authz.CanViewSite(p, siteID, grants); err != nil {
		return nil, err
	}

	site, err := uc.repo.GetByID(siteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrMissingItem
	}
	return toSiteResponse(site), nil
}

// ListByCustomer lista los sites de un customer. Mismo alcance que la vista
// del customer: interno, o un externo sobre su propio customer.
func (uc *SiteUseCase) ListByCustomer(p authz.Principal, customerID string) ([]*dto.SiteResponse, error) {
	if err := authz.CanViewCustomer(p, customerID); err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrMissingItem
	}
	sites, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SiteResponse, 0, len(sites))
	for _, s := range sites {
		out = append(out, toSiteResponse(s))
	}
	return out, nil
}

func toSiteResponse(s *entity.Site) *dto.SiteResponse {
	if s == nil {
		return nil
	}
	return &dto.SiteResponse{
		ID:           s.ID,
		Name:         s.Name,
		CustomerID:   s.CustomerID,
		Users:        s.Users,
		CapacityKW:   s.CapacityKW,
		PanelCount:   s.PanelCount,
		BatteryCount: s.BatteryCount,
		Inverters:    s.Inverters,
		Meters:       s.Meters,
		Address:      s.Address,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
