package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResponse resumen de ventas de un rango de fechas.
type SalesSummaryResponse struct {
	CompanyID     string                 `json:"company_id"`
	Start         time.Time              `json:"start"`
	End           time.Time              `json:"end"`
	SaleCount     int64                  `json:"sale_count"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	TaxTotal      decimal.Decimal        `json:"tax_total"`
	DiscountTotal decimal.Decimal        `json:"discount_total"`
	GrandTotal    decimal.Decimal        `json:"grand_total"`
	AverageTicket decimal.Decimal        `json:"average_ticket"`
	ByPayment     []PaymentBreakdownDTO  `json:"by_payment"`
	ByLocation    []LocationBreakdownDTO `json:"by_location"`
	TopProducts   []TopProductDTO        `json:"top_products"`
}

// PaymentBreakdownDTO ventas por medio de pago.
type PaymentBreakdownDTO struct {
	PaymentMethod string          `json:"payment_method"`
	SaleCount     int64           `json:"sale_count"`
	Total         decimal.Decimal `json:"total"`
}

// LocationBreakdownDTO ventas por sede.
type LocationBreakdownDTO struct {
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	SaleCount    int64           `json:"sale_count"`
	Total        decimal.Decimal `json:"total"`
}

// TopProductDTO producto con mayor ingreso del período.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	UnitsSold   decimal.Decimal `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// LowStockItemDTO producto bajo el umbral en una sede.
type LowStockItemDTO struct {
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinStock     decimal.Decimal `json:"min_stock"`
}

// LowStockReportResponse reporte de stock bajo del comercio.
type LowStockReportResponse struct {
	CompanyID string            `json:"company_id"`
	Items     []LowStockItemDTO `json:"items"`
}
