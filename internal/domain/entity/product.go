package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-sede).
// El stock se maneja por sede en StockLevel; Active=false es borrado suave.
// NameSearch guarda el nombre normalizado (minúsculas, sin tildes) para búsqueda.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por comercio
	Barcode     string
	Name        string
	NameSearch  string
	Description string
	Category    string
	Price       decimal.Decimal // precio de venta
	TaxRate     decimal.Decimal // porcentaje: 0, 5, 19
	MinStock    decimal.Decimal // umbral de alerta de stock bajo
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
