package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankmr450/solairis/internal/application/dto"
	"github.com/kirankmr450/solairis/internal/application/usecase"
	"github.com/kirankmr450/solairis/internal/domain"
	"github.com/kirankmr450/solairis/internal/domain/authz"
	"github.com/kirankmr450/solairis/internal/domain/entity"
)

func newSiteFixture(t *testing.T) (*usecase.SiteUseCase, *fakeCustomerRepo, string) {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	siteRepo := newFakeSiteRepo()
	customer := &entity.Customer{ID: "cust-1", Name: "Acme", PrimaryEmail: "a@acme.com", Active: true}
	require.NoError(t, customerRepo.Create(customer))
	return usecase.NewSiteUseCase(siteRepo, customerRepo), customerRepo, customer.ID
}

func adminPrincipal(customerID string) authz.Principal {
	return authz.Principal{UserID: "admin-1", Type: entity.UserTypeExternal,
		Role: entity.RoleCustomerAdmin, CustomerID: customerID}
}

func TestCreateSite_RegistraElSiteEnElCustomer(t *testing.T) {
	uc, customerRepo, custID := newSiteFixture(t)

	out, err := uc.Create(adminPrincipal(custID), dto.CreateSiteRequest{
		Name:       "Planta Norte",
		CapacityKW: decimal.NewFromFloat(125.5),
		PanelCount: 320,
	})
	require.NoError(t, err)

	assert.Equal(t, custID, out.CustomerID)
	assert.True(t, out.CapacityKW.Equal(decimal.NewFromFloat(125.5)))

	sites := customerRepo.customers[custID].Sites
	require.Len(t, sites, 1)
	assert.Equal(t, out.ID, sites[0])
}

func TestCreateSite_SinName_Rechazado(t *testing.T) {
	uc, _, custID := newSiteFixture(t)
	_, err := uc.Create(adminPrincipal(custID), dto.CreateSiteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSite_CustomerInexistente_NotFound(t *testing.T) {
	uc, _, _ := newSiteFixture(t)
	_, err := uc.Create(adminPrincipal("no-existe"), dto.CreateSiteRequest{Name: "Planta"})
	assert.ErrorIs(t, err, domain.ErrMissingItem)
}

func TestGetSite_InternoYCustomerAdminSiempre(t *testing.T) {
	uc, _, custID := newSiteFixture(t)
	out, err := uc.Create(adminPrincipal(custID), dto.CreateSiteRequest{Name: "Planta Norte"})
	require.NoError(t, err)

	staff := authz.Principal{UserID: "staff", Type: entity.UserTypeInternal, Role: entity.RoleOperator}
	_, err = uc.Get(staff, out.ID)
	assert.NoError(t, err)

	_, err = uc.Get(adminPrincipal(custID), out.ID)
	assert.NoError(t, err)
}

func TestGetSite_ExternoConConcesionEnElRoster(t *testing.T) {
	uc, customerRepo, custID := newSiteFixture(t)
	out, err := uc.Create(adminPrincipal(custID), dto.CreateSiteRequest{Name: "Planta Norte"})
	require.NoError(t, err)

	require.NoError(t, customerRepo.AddRosterEntry(custID, entity.RosterEntry{
		UserID: "ing-1",
		Sites:  []entity.SiteGrant{{SiteID: out.ID, Role: entity.RoleSiteEngineer}},
	}))

	ing := authz.Principal{UserID: "ing-1", Type: entity.UserTypeExternal,
		Role: entity.RoleSiteEngineer, CustomerID: custID}
	got, err := uc.Get(ing, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
}

func TestGetSite_ExternoSinConcesion_Forbidden(t *testing.T) {
	uc, customerRepo, custID := newSiteFixture(t)
	out, err := uc.Create(adminPrincipal(custID), dto.CreateSiteRequest{Name: "Planta Norte"})
	require.NoError(t, err)

	// Entrada en el roster pero sin concesión sobre este site
	require.NoError(t, customerRepo.AddRosterEntry(custID, entity.RosterEntry{
		UserID: "ing-2",
		Sites:  []entity.SiteGrant{{SiteID: "otro-site", Role: entity.RoleSiteAdmin}},
	}))

	ing := authz.Principal{UserID: "ing-2", Type: entity.UserTypeExternal,
		Role: entity.RoleSiteAdmin, CustomerID: custID}
	_, err = uc.Get(ing, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Y sin entrada en el roster, igual de denegado
	sinRoster := authz.Principal{UserID: "nadie", Type: entity.UserTypeExternal,
		Role: entity.RoleSiteEngineer, CustomerID: custID}
	_, err = uc.Get(sinRoster, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListSitesByCustomer_DevuelveLosSitesDelCustomer(t *testing.T) {
	uc, _, custID := newSiteFixture(t)
	norte, err := uc.Create(adminPrincipal(custID), dto.CreateSiteRequest{Name: "Planta Norte"})
	require.NoError(t, err)
	sur, err := uc.Create(adminPrincipal(custID), dto.CreateSiteRequest{Name: "Planta Sur"})
	require.NoError(t, err)

	staff := authz.Principal{UserID: "staff", Type: entity.UserTypeInternal, Role: entity.RoleOperator}
	sites, err := uc.ListByCustomer(staff, custID)
	require.NoError(t, err)
	require.Len(t, sites, 2)

	ids := []string{sites[0].ID, sites[1].ID}
	assert.Contains(t, ids, norte.ID)
	assert.Contains(t, ids, sur.ID)

	// Un externo del propio customer también puede listar
	sites, err = uc.ListByCustomer(adminPrincipal(custID), custID)
	require.NoError(t, err)
	assert.Len(t, sites, 2)
}

func TestListSitesByCustomer_ExternoDeOtroCustomer_Forbidden(t *testing.T) {
	uc, _, custID := newSiteFixture(t)
	_, err := uc.Create(adminPrincipal(custID), dto.CreateSiteRequest{Name: "Planta Norte"})
	require.NoError(t, err)

	ajeno := authz.Principal{UserID: "otro", Type: entity.UserTypeExternal,
		Role: entity.RoleCustomerAdmin, CustomerID: "cust-ajeno"}
	_, err = uc.ListByCustomer(ajeno, custID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListSitesByCustomer_CustomerInexistente_NotFound(t *testing.T) {
	uc, _, _ := newSiteFixture(t)
	staff := authz.Principal{UserID: "staff", Type: entity.UserTypeInternal, Role: entity.RoleRoot}
	_, err := uc.ListByCustomer(staff, "no-existe")
	assert.ErrorIs(t, err, domain.ErrMissingItem)
}

func TestGetSite_Inexistente_NotFound(t *testing.T) {
	uc, _, _ := newSiteFixture(t)
	staff := authz.Principal{UserID: "staff", Type: entity.UserTypeInternal, Role: entity.RoleRoot}
	_, err := uc.Get(staff, "no-existe")
	assert.ErrorIs(t, err, domain.ErrMissingItem)
}
