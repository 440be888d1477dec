package entity

import "time"

// Location coordenadas geográficas de una dirección.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address dirección postal compartida por Customer y Site.
type Address struct {
	Line1    string   `json:"line1,omitempty"`
	Line2    string   `json:"line2,omitempty"`
	Locality string   `json:"locality,omitempty"`
	City     string   `json:"city,omitempty"`
	Pin      string   `json:"pin,omitempty"`
	State    string   `json:"state,omitempty"`
	Country  string   `json:"country,omitempty"`
	Location Location `json:"location,omitempty"`
}

// SiteGrant rol de un usuario en un site concreto.
type SiteGrant struct {
	SiteID string   `json:"site_id"`
	Role   UserRole `json:"role"`
}

// RosterEntry asocia un usuario del customer con sus roles por site.
// Un usuario puede tener privilegios distintos en sites distintos y puede
// existir sin estar asociado a ningún site todavía.
// El CustomerAdmin nunca aparece aquí: tiene acceso total sin rol por site.
type RosterEntry struct {
	UserID string      `json:"user_id"`
	Sites  []SiteGrant `json:"sites"`
}

// Customer representa una organización cliente (instalaciones solares).
type Customer struct {
	ID           string
	Name         string
	PrimaryEmail string // único; nunca cambia después de la creación
	Emails       []string
	PhoneNumbers []string
	Website      string
	Address      Address
	Active       bool
	Users        []RosterEntry
	Sites        []string // ids de los sites del customer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RosterEntryFor devuelve la entrada del roster para userID, o nil si no existe.
func (c *Customer) RosterEntryFor(userID string) *RosterEntry {
	for i := range c.Users {
		if c.Users[i].UserID == userID {
			return &c.Users[i]
		}
	}
	return nil
}
