package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest entrada para actualizar los ajustes del comercio.
type UpdateSettingsRequest struct {
	Currency       *string          `json:"currency" validate:"omitempty,len=3"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	ReceiptFooter  *string          `json:"receipt_footer" validate:"omitempty,max=500"`
	LowStockAlerts *bool            `json:"low_stock_alerts"`
	AlertEmail     *string          `json:"alert_email" validate:"omitempty,email"`
}

// SettingsResponse salida de los ajustes del comercio.
type SettingsResponse struct {
	CompanyID      string          `json:"company_id"`
	Currency       string          `json:"currency"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	ReceiptFooter  string          `json:"receipt_footer"`
	LowStockAlerts bool            `json:"low_stock_alerts"`
	AlertEmail     string          `json:"alert_email,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
