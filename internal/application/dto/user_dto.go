package dto

import (
	"time"

	"github.com/kirankmr450/solairis/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// Role es obligatorio para usuarios internos; CustomerID para externos.
type CreateUserRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Type        entity.UserType `json:"type" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	PhoneNumber string          `json:"phone_number"`
	Role        entity.UserRole `json:"role"`
	CustomerID  string          `json:"customer_id" validate:"omitempty,uuid"`
}

// UpdateUserRequest actualización parcial: solo cambian los campos presentes.
type UpdateUserRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}

// UpdatePasswordRequest cambio de contraseña.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        entity.UserType `json:"type"`
	Role        entity.UserRole `json:"role,omitempty"`
	CustomerID  string          `json:"customer_id,omitempty"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	IsNewUser   bool            `json:"is_new_user"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
