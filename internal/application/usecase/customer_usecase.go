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

// CustomerUseCase directorio de customers: alta con su CustomerAdmin, ciclo
// de activación en cascada y proyecciones por rol del principal.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	userRepo repository.UserRepository
	users    *UserUseCase
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, userRepo repository.UserRepository, users *UserUseCase) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, userRepo: userRepo, users: users}
}

// Create crea un customer y, a continuación, su CustomerAdmin con el mismo
// email. Son dos escrituras secuenciales sin compensación: si la segunda
// falla, el customer queda huérfano. Brecha conocida que se mantiene hasta
// que el storage ofrezca una transacción multi-documento aquí.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerCreatedResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"name\"", domain.ErrInvalidInput)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"email\"", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"password\"", domain.ErrInvalidInput)
	}

	var phones []string
	if in.PhoneNumber1 != "" {
		phones = append(phones, in.PhoneNumber1)
	}
	if in.PhoneNumber2 != "" {
		phones = append(phones, in.PhoneNumber2)
	}
	var address entity.Address
	if in.Address != nil {
		address = *in.Address
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		Name:         in.Name,
		PrimaryEmail: in.Email,
		PhoneNumbers: phones,
		Website:      in.Website,
		Address:      address,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}

	var phone string
	if len(phones) > 0 {
		phone = phones[0]
	}
	adminUserID, err := uc.users.CreateCustomerAdmin(customer.ID, in.Name, in.Email, phone, in.Password)
	if err != nil {
		return nil, err
	}

	return &dto.CustomerCreatedResponse{
		ID:           customer.ID,
		Name:         customer.Name,
		PrimaryEmail: customer.PrimaryEmail,
		PhoneNumbers: phones,
		Website:      customer.Website,
		Address:      customer.Address,
		AdminUserID:  adminUserID,
	}, nil
}

// Activate reactiva el customer y solo a su CustomerAdmin, no al resto del
// roster. Asimétrico respecto a Deactivate: el resto de usuarios se reactiva
// uno a uno desde el directorio.
func (uc *CustomerUseCase) Activate(customerID string) error {
	if err := uc.repo.SetActive(customerID, true); err != nil {
		return err
	}
	return uc.userRepo.SetActiveByCustomerRole(customerID, entity.RoleCustomerAdmin, true)
}

// Deactivate desactiva el customer y, en cascada, todos sus usuarios.
// La cascada no es transaccional: un lector concurrente puede observar el
// customer inactivo con usuarios aún activos.
func (uc *CustomerUseCase) Deactivate(customerID string) error {
	if err := uc.repo.SetActive(customerID, false); err != nil {
		return err
	}
	return uc.userRepo.SetActiveByCustomer(customerID, false)
}

// Get obtiene el customer completo.
func (uc *CustomerUseCase) Get(customerID string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrMissingItem
	}
	return customer, nil
}

// Projection devuelve la vista del customer según el principal:
// interno: todo; CustomerAdmin: todo menos el flag active; resto de externos:
// campos base más sus propias concesiones de site (lista vacía si no tiene
// entrada en el roster, nunca un error).
func (uc *CustomerUseCase) Projection(customerID string, p authz.Principal) (*dto.CustomerResponse, error) {
	customer, err := uc.Get(customerID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CustomerResponse{
		ID:           customer.ID,
		Name:         customer.Name,
		PrimaryEmail: customer.PrimaryEmail,
		PhoneNumbers: customer.PhoneNumbers,
	}
	// Un slice nil dentro del interface{} serializaría "sites": null.
	siteIDs := customer.Sites
	if siteIDs == nil {
		siteIDs = []string{}
	}
	switch {
	case p.Type != entity.UserTypeExternal:
		resp.Emails = customer.Emails
		resp.Website = customer.Website
		resp.Address = &customer.Address
		resp.Active = &customer.Active
		resp.Users = customer.Users
		resp.Sites = siteIDs
	case p.Role == entity.RoleCustomerAdmin:
		resp.Emails = customer.Emails
		resp.Website = customer.Website
		resp.Address = &customer.Address
		resp.Users = customer.Users
		resp.Sites = siteIDs
	default:
		grants := []entity.SiteGrant{}
		if e := customer.RosterEntryFor(p.UserID); e != nil && e.Sites != nil {
			grants = e.Sites
		}
		resp.Sites = grants
	}
	return resp, nil
}

// CreateUser crea un usuario externo bajo el customer del principal y lo
// añade al roster sin concesiones de site todavía.
// El CustomerAdmin nunca entra al roster por esta vía: no puede llegar aquí
// por la regla del gate (ver authz.CanCreateCustomerUser).
func (uc *CustomerUseCase) CreateUser(p authz.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	customer, err := uc.Get(p.CustomerID)
	if err != nil {
		return nil, err
	}
	in.Type = entity.UserTypeExternal
	in.CustomerID = customer.ID
	user, err := uc.users.Create(in)
	if err != nil {
		return nil, err
	}
	entry := entity.RosterEntry{UserID: user.ID, Sites: []entity.SiteGrant{}}
	if err := uc.repo.AddRosterEntry(customer.ID, entry); err != nil {
		return nil, err
	}
	return user, nil
}

// ListOwnUsers lista los usuarios del customer del principal (CustomerAdmin).
func (uc *CustomerUseCase) ListOwnUsers(p authz.Principal) ([]*dto.UserResponse, error) {
	return uc.ListUsersByCustomer(p.CustomerID)
}

// ListUsersByCustomer resuelve cada entrada del roster contra el directorio
// de usuarios. Las referencias rotas se saltan: el roster tolera usuarios
// borrados.
func (uc *CustomerUseCase) ListUsersByCustomer(customerID string) ([]*dto.UserResponse, error) {
	customer, err := uc.Get(customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(customer.Users))
	for _, entry := range customer.Users {
		user, err := uc.userRepo.GetByID(entry.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		out = append(out, toUserResponse(user))
	}
	return out, nil
}
