package dto

import (
	"github.com/kirankmr450/solairis/internal/domain/entity"
)

// CreateCustomerRequest entrada para crear un customer.
// Email y password son los del CustomerAdmin que se crea junto al customer.
type CreateCustomerRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Email        string          `json:"email" validate:"required,email"`
	Password     string          `json:"password" validate:"required,min=8"`
	PhoneNumber1 string          `json:"phone_number1"`
	PhoneNumber2 string          `json:"phone_number2"`
	Website      string          `json:"website"`
	Address      *entity.Address `json:"address"`
}

// CustomerCreatedResponse salida de la creación: customer + id del admin.
type CustomerCreatedResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	PrimaryEmail string         `json:"primary_email"`
	PhoneNumbers []string       `json:"phone_numbers"`
	Website      string         `json:"website,omitempty"`
	Address      entity.Address `json:"address"`
	AdminUserID  string         `json:"admin_user_id"`
}

// CustomerResponse proyección de un customer. La forma depende del principal:
// los campos puntero se omiten para llamadores sin privilegio sobre ellos.
type CustomerResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	PrimaryEmail string               `json:"primary_email"`
	PhoneNumbers []string             `json:"phone_numbers"`
	Emails       []string             `json:"emails,omitempty"`
	Website      string               `json:"website,omitempty"`
	Address      *entity.Address      `json:"address,omitempty"`
	Active       *bool                `json:"active,omitempty"`
	Users        []entity.RosterEntry `json:"users,omitempty"`
	Sites        interface{}          `json:"sites,omitempty"`
}
