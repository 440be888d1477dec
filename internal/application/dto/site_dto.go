package dto

import (
	"time"

	"github.com/kirankmr450/solairis/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateSiteRequest entrada para crear un site bajo el customer del llamador.
type CreateSiteRequest struct {
	Name         string            `json:"name" validate:"required,min=1,max=200"`
	CapacityKW   decimal.Decimal   `json:"capacity_kw"`
	PanelCount   int               `json:"panel_count"`
	BatteryCount int               `json:"battery_count"`
	Inverters    []entity.Inverter `json:"inverters"`
	Meters       []entity.Meter    `json:"meters"`
	Address      *entity.Address   `json:"address"`
}

// SiteResponse salida de un site.
type SiteResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	CustomerID   string            `json:"customer_id"`
	Users        []entity.SiteUser `json:"users"`
	CapacityKW   decimal.Decimal   `json:"capacity_kw"`
	PanelCount   int               `json:"panel_count"`
	BatteryCount int               `json:"battery_count"`
	Inverters    []entity.Inverter `json:"inverters"`
	Meters       []entity.Meter    `json:"meters"`
	Address      entity.Address    `json:"address"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
