package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusCompletada = "completada"
	SaleStatusAnulada    = "anulada"
)

// Medios de pago aceptados.
const (
	PaymentEfectivo      = "efectivo"
	PaymentTarjeta       = "tarjeta"
	PaymentTransferencia = "transferencia"
)

// ValidPaymentMethod indica si el medio de pago existe.
func ValidPaymentMethod(m string) bool {
	return m == PaymentEfectivo || m == PaymentTarjeta || m == PaymentTransferencia
}

// Sale representa la cabecera de una venta registrada en el punto de venta.
// Number es el consecutivo por sede; se asigna en la misma transacción que
// descuenta el stock.
type Sale struct {
	ID            string
	CompanyID     string
	LocationID    string
	UserID        string // vendedor (del token)
	Number        int64
	Status        string // completada, anulada
	PaymentMethod string // efectivo, tarjeta, transferencia
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	DiscountTotal decimal.Decimal
	GrandTotal    decimal.Decimal
	Notes         string
	SoldAt        time.Time
	VoidedAt      *time.Time
	VoidReason    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleItem representa una línea de venta. Nombre, SKU y precio se congelan
// al momento de la venta: cambios posteriores del producto no la afectan.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	SKU         string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	Discount    decimal.Decimal // descuento absoluto de la línea
	Subtotal    decimal.Decimal // qty*precio - descuento, sin impuesto
}
