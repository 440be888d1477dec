package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kirankmr450/solairis/internal/application/dto"
	"github.com/kirankmr450/solairis/internal/domain"
	"github.com/kirankmr450/solairis/internal/domain/entity"
	"github.com/kirankmr450/solairis/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase directorio de usuarios: altas internas y externas, ciclo de
// activación y proyecciones públicas sin hash.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario interno o externo.
// El hash de la contraseña es un paso explícito aquí, no un hook de persistencia.
// La unicidad del email la garantiza el índice del storage, no un pre-chequeo.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"name\"", domain.ErrInvalidInput)
	}
	if in.Type == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"type\"", domain.ErrInvalidInput)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"email\"", domain.ErrInvalidInput)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"password\"", domain.ErrInvalidInput)
	}
	if in.Type != entity.UserTypeInternal && in.Type != entity.UserTypeExternal {
		return nil, fmt.Errorf("%w: tipo de usuario inválido", domain.ErrInvalidInput)
	}
	role := in.Role
	if entity.RequiresRole(in.Type) {
		if role == "" {
			return nil, fmt.Errorf("%w: falta el campo obligatorio \"role\"", domain.ErrInvalidInput)
		}
		if !entity.IsValidRole(in.Type, role) {
			return nil, fmt.Errorf("%w: rol inválido para el tipo de usuario", domain.ErrInvalidInput)
		}
	} else {
		if in.CustomerID == "" {
			return nil, fmt.Errorf("%w: falta el campo obligatorio \"customer_id\"", domain.ErrInvalidInput)
		}
		if role == "" {
			role = entity.RoleNotAssigned
		}
		if !entity.IsValidRole(in.Type, role) {
			return nil, fmt.Errorf("%w: rol inválido para el tipo de usuario", domain.ErrInvalidInput)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de password: %w", err)
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Type:         in.Type,
		Role:         role,
		CustomerID:   in.CustomerID,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		IsNewUser:    true,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// CreateCustomerAdmin alta del administrador que nace junto al customer.
// Entrada interna, no expuesta por rutas: tipo y rol vienen fijados, así que
// no pasa por la validación de rol de Create.
func (uc *UserUseCase) CreateCustomerAdmin(customerID, name, email, phone, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", fmt.Errorf("%w: name, email y password son obligatorios", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash de password: %w", err)
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Type:         entity.UserTypeExternal,
		Role:         entity.RoleCustomerAdmin,
		CustomerID:   customerID,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		IsNewUser:    true,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// Update actualización parcial: solo cambian los campos presentes.
// Un name presente pero vacío es un error, no un borrado.
func (uc *UserUseCase) Update(userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Name == nil && in.PhoneNumber == nil {
		return nil, fmt.Errorf("%w: cuerpo de la petición vacío", domain.ErrInvalidInput)
	}
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("%w: falta el campo obligatorio \"name\"", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdatePassword rehashea y limpia el flag de usuario nuevo.
// El chequeo de que solo uno mismo cambia su password es responsabilidad
// del llamador; aquí no se verifica propiedad.
func (uc *UserUseCase) UpdatePassword(userID, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: falta el campo obligatorio \"password\"", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash de password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.IsNewUser = false
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// SetActive activa o desactiva un usuario. Idempotente.
func (uc *UserUseCase) SetActive(userID string, active bool) error {
	return uc.repo.SetActive(userID, active)
}

// GetByID obtiene el usuario completo (uso interno, incluye hash).
func (uc *UserUseCase) GetByID(userID string) (*entity.User, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// GetPublic obtiene la proyección pública de un usuario, sin hash.
func (uc *UserUseCase) GetPublic(userID string) (*dto.UserResponse, error) {
	user, err := uc.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListInternal lista los usuarios internos, excluyendo opcionalmente un rol
// (Root no aparece en los listados).
func (uc *UserUseCase) ListInternal(excludeRole entity.UserRole) ([]*dto.UserResponse, error) {
	users, err := uc.repo.ListByType(entity.UserTypeInternal, excludeRole)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Type:        u.Type,
		Role:        u.Role,
		CustomerID:  u.CustomerID,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		IsNewUser:   u.IsNewUser,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
