package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotalsResult totales agregados del período.
type SalesTotalsResult struct {
	SaleCount     int64
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	GrandTotal    decimal.Decimal
}

// PaymentBreakdownResult ventas agrupadas por medio de pago.
type PaymentBreakdownResult struct {
	PaymentMethod string
	SaleCount     int64
	Total         decimal.Decimal
}

// LocationBreakdownResult ventas agrupadas por sede.
type LocationBreakdownResult struct {
	LocationID   string
	LocationName string
	SaleCount    int64
	Total        decimal.Decimal
}

// TopProductResult producto con mayor ingreso del período.
type TopProductResult struct {
	ProductID   string
	SKU         string
	ProductName string
	UnitsSold   decimal.Decimal
	Revenue     decimal.Decimal
}

// LowStockResult producto cuyo stock en una sede cayó al umbral o por debajo.
type LowStockResult struct {
	ProductID    string
	SKU          string
	ProductName  string
	LocationID   string
	LocationName string
	Quantity     decimal.Decimal
	MinStock     decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes de ventas e inventario.
// Solo considera ventas en estado completada.
type ReportRepository interface {
	GetSalesTotals(ctx context.Context, companyID string, start, end time.Time) (SalesTotalsResult, error)
	GetSalesByPayment(ctx context.Context, companyID string, start, end time.Time) ([]PaymentBreakdownResult, error)
	GetSalesByLocation(ctx context.Context, companyID string, start, end time.Time) ([]LocationBreakdownResult, error)
	GetTopProducts(ctx context.Context, companyID string, start, end time.Time, limit int) ([]TopProductResult, error)
	GetLowStock(ctx context.Context, companyID string) ([]LowStockResult, error)
}
