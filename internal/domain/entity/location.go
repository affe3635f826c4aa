package entity

import "time"

// Tipos de sede.
const (
	LocationTypeTienda = "tienda"
	LocationTypeBodega = "bodega"
)

// Location representa una sede del comercio: punto de venta o bodega.
// Active=false es borrado suave; una sede con stock no puede desactivarse.
type Location struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Type      string // tienda, bodega
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
