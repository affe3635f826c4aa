package entity

import "time"

// Company representa un comercio/tenant del sistema (multi-tenant).
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT o identificación fiscal del comercio
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
