package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SiteUser rol de un usuario dentro del site.
// Borrar un site no afecta a los usuarios, y borrar un usuario no limpia
// estas entradas: las referencias obsoletas se toleran.
type SiteUser struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
}

// Inverter inversor instalado en el site.
type Inverter struct {
	Name  string `json:"name,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
}

// WarrantyDetails periodo y número de garantía de un equipo.
type WarrantyDetails struct {
	StartDate time.Time `json:"start_date,omitempty"`
	EndDate   time.Time `json:"end_date,omitempty"`
	Number    string    `json:"number,omitempty"`
}

// Meter medidor instalado en el site.
type Meter struct {
	Name             string          `json:"name,omitempty"`
	Make             string          `json:"make,omitempty"`
	Model            string          `json:"model,omitempty"`
	SerialNumber     string          `json:"serial_number,omitempty"`
	PurchaseDate     time.Time       `json:"purchase_date,omitempty"`
	InstallationDate time.Time       `json:"installation_date,omitempty"`
	Warranty         WarrantyDetails `json:"warranty,omitempty"`
}

// Site representa una instalación de un customer.
type Site struct {
	ID           string
	Name         string
	CustomerID   string
	Users        []SiteUser
	CapacityKW   decimal.Decimal
	PanelCount   int
	BatteryCount int
	Inverters    []Inverter
	Meters       []Meter
	Address      Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
