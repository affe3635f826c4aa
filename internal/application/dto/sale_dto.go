package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta de entrada. UnitPrice es opcional: si viene
// en cero se usa el precio vigente del producto.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
}

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	LocationID    string            `json:"location_id" validate:"required,uuid"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=efectivo tarjeta transferencia"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	Notes         string            `json:"notes"`
}

// VoidSaleRequest entrada para anular una venta.
type VoidSaleRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

// SaleItemResponse línea de venta de salida.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Discount    decimal.Decimal `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	CompanyID     string             `json:"company_id"`
	LocationID    string             `json:"location_id"`
	UserID        string             `json:"user_id"`
	Number        int64              `json:"number"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxTotal      decimal.Decimal    `json:"tax_total"`
	DiscountTotal decimal.Decimal    `json:"discount_total"`
	GrandTotal    decimal.Decimal    `json:"grand_total"`
	Notes         string             `json:"notes,omitempty"`
	SoldAt        time.Time          `json:"sold_at"`
	VoidedAt      *time.Time         `json:"voided_at,omitempty"`
	VoidReason    string             `json:"void_reason,omitempty"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
