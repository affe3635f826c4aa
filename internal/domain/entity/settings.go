package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings es la configuración por comercio (fila única por company).
type Settings struct {
	CompanyID      string
	Currency       string          // código ISO 4217, ej. COP
	TaxRate        decimal.Decimal // IVA por defecto para productos nuevos
	ReceiptFooter  string          // texto al pie del recibo
	LowStockAlerts bool            // habilita el resumen diario de stock bajo
	AlertEmail     string          // destinatario del resumen
	UpdatedAt      time.Time
}

// DefaultSettings valores iniciales cuando el comercio aún no guarda ajustes.
func DefaultSettings(companyID string) *Settings {
	return &Settings{
		CompanyID:      companyID,
		Currency:       "COP",
		TaxRate:        decimal.NewFromInt(19),
		ReceiptFooter:  "Gracias por su compra",
		LowStockAlerts: false,
	}
}
