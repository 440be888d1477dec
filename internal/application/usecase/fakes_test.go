package usecase_test

import (
	"errors"

	"github.com/kirankmr450/solairis/internal/domain"
	"github.com/kirankmr450/solairis/internal/domain/entity"
	"github.com/kirankmr450/solairis/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de use case. Reproducen el contrato
// de los puertos: (nil, nil) cuando no existe, ErrEmailAlreadyExists en
// duplicados (el índice único resuelve la carrera, no un pre-chequeo).
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users      map[string]*entity.User
	createErr  error // fuerza el fallo del siguiente Create
	createdIDs []string
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	r.createdIDs = append(r.createdIDs, user.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.New("update de usuario inexistente")
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) SetActive(id string, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	return nil
}

func (r *fakeUserRepo) SetActiveByCustomer(customerID string, active bool) error {
	for _, u := range r.users {
		if u.CustomerID == customerID {
			u.Active = active
		}
	}
	return nil
}

func (r *fakeUserRepo) SetActiveByCustomerRole(customerID string, role entity.UserRole, active bool) error {
	for _, u := range r.users {
		if u.CustomerID == customerID && u.Role == role {
			u.Active = active
		}
	}
	return nil
}

func (r *fakeUserRepo) ListByType(t entity.UserType, excludeRole entity.UserRole) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Type == t && u.Role != excludeRole {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(customer *entity.Customer) error {
	for _, c := range r.customers {
		if c.PrimaryEmail == customer.PrimaryEmail {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) SetActive(id string, active bool) error {
	c, ok := r.customers[id]
	if !ok {
		return domain.ErrMissingItem
	}
	c.Active = active
	return nil
}

func (r *fakeCustomerRepo) AddRosterEntry(customerID string, entry entity.RosterEntry) error {
	c, ok := r.customers[customerID]
	if !ok {
		return domain.ErrMissingItem
	}
	c.Users = append(c.Users, entry)
	return nil
}

func (r *fakeCustomerRepo) AddSite(customerID, siteID string) error {
	c, ok := r.customers[customerID]
	if !ok {
		return domain.ErrMissingItem
	}
	c.Sites = append(c.Sites, siteID)
	return nil
}

type fakeSiteRepo struct {
	sites map[string]*entity.Site
}

var _ repository.SiteRepository = (*fakeSiteRepo)(nil)

func newFakeSiteRepo() *fakeSiteRepo {
	return &fakeSiteRepo{sites: make(map[string]*entity.Site)}
}

func (r *fakeSiteRepo) Create(site *entity.Site) error {
	cp := *site
	r.sites[site.ID] = &cp
	return nil
}

func (r *fakeSiteRepo) GetByID(id string) (*entity.Site, error) {
	s, ok := r.sites[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSiteRepo) ListByCustomer(customerID string) ([]*entity.Site, error) {
	var out []*entity.Site
	for _, s := range r.sites {
		if s.CustomerID == customerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}
