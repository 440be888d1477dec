package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kirankmr450/solairis/internal/application/dto"
	"github.com/kirankmr450/solairis/internal/application/usecase"
	"github.com/kirankmr450/solairis/internal/domain"
	"github.com/kirankmr450/solairis/internal/domain/entity"
)

func validInternalUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "Laura Ops",
		Type:     entity.UserTypeInternal,
		Email:    "laura@solairis.io",
		Password: "secreto-123",
		Role:     entity.RoleOperator,
	}
}

func TestCreate_UsuarioNuevoActivoYConHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(validInternalUser())
	require.NoError(t, err)

	assert.True(t, out.Active, "un usuario recién creado nace activo")
	assert.True(t, out.IsNewUser)

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto-123", stored.PasswordHash,
		"el hash nunca puede ser el texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto-123")))
}

func TestCreate_CamposObligatorios(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	cases := []struct {
		name   string
		mutate func(*dto.CreateUserRequest)
	}{
		{"sin name", func(r *dto.CreateUserRequest) { r.Name = "" }},
		{"sin type", func(r *dto.CreateUserRequest) { r.Type = "" }},
		{"sin email", func(r *dto.CreateUserRequest) { r.Email = "" }},
		{"sin password", func(r *dto.CreateUserRequest) { r.Password = "" }},
		{"interno sin role", func(r *dto.CreateUserRequest) { r.Role = "" }},
		{"interno con rol externo", func(r *dto.CreateUserRequest) { r.Role = entity.RoleSiteAdmin }},
		{"tipo desconocido", func(r *dto.CreateUserRequest) { r.Type = "robot" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInternalUser()
			tc.mutate(&in)
			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_ExternoRequiereCustomerYRolPorDefectoNA(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	in := dto.CreateUserRequest{
		Name:     "Técnico",
		Type:     entity.UserTypeExternal,
		Email:    "tec@acme.com",
		Password: "secreto-123",
	}
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "externo sin customer_id se rechaza")

	in.CustomerID = "cust-1"
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleNotAssigned, out.Role, "externo sin rol queda como NA")
	assert.Equal(t, "cust-1", out.CustomerID)
}

func TestCreate_EmailDuplicado_Conflict(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(validInternalUser())
	require.NoError(t, err)

	dup := validInternalUser()
	dup.Name = "Otra Persona"
	_, err = uc.Create(dup)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.users, 1, "el duplicado no persiste un segundo registro")
}

func TestCreateCustomerAdmin_TipoYRolFijados(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	id, err := uc.CreateCustomerAdmin("cust-9", "Acme", "a@acme.com", "555-1234", "secreto-123")
	require.NoError(t, err)

	u := repo.users[id]
	require.NotNil(t, u)
	assert.Equal(t, entity.UserTypeExternal, u.Type)
	assert.Equal(t, entity.RoleCustomerAdmin, u.Role)
	assert.Equal(t, "cust-9", u.CustomerID)
	assert.True(t, u.Active)
	assert.True(t, u.IsNewUser)
}

func TestUpdate_ParcialYRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(validInternalUser())
	require.NoError(t, err)

	name := "X"
	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)

	after, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", after.Name)
	// El resto de campos no cambia
	assert.Equal(t, created.Email, after.Email)
	assert.Equal(t, created.Role, after.Role)
	assert.True(t, after.Active)
	assert.True(t, after.IsNewUser)
}

func TestUpdate_NamePresentePeroVacio_Rechazado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(validInternalUser())
	require.NoError(t, err)

	empty := ""
	_, err = uc.Update(created.ID, dto.UpdateUserRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_UsuarioInexistente_NotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	name := "X"
	_, err := uc.Update("no-existe", dto.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdatePassword_RehashYLimpiaIsNewUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(validInternalUser())
	require.NoError(t, err)
	oldHash := repo.users[created.ID].PasswordHash

	require.NoError(t, uc.UpdatePassword(created.ID, "nuevo-secreto"))

	u := repo.users[created.ID]
	assert.False(t, u.IsNewUser, "cambiar la contraseña limpia el flag de usuario nuevo")
	assert.NotEqual(t, oldHash, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("nuevo-secreto")))
}

func TestSetActive_IdempotenteYNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	created, err := uc.Create(validInternalUser())
	require.NoError(t, err)

	require.NoError(t, uc.SetActive(created.ID, false))
	require.NoError(t, uc.SetActive(created.ID, false), "repetir la desactivación no es error")
	assert.False(t, repo.users[created.ID].Active)

	assert.ErrorIs(t, uc.SetActive("no-existe", true), domain.ErrUserNotFound)
}

func TestListInternal_ExcluyeRoot(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(validInternalUser())
	require.NoError(t, err)

	root := validInternalUser()
	root.Email = "root@solairis.io"
	root.Role = entity.RoleRoot
	_, err = uc.Create(root)
	require.NoError(t, err)

	list, err := uc.ListInternal(entity.RoleRoot)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.RoleOperator, list[0].Role)
}
