package dto

import "github.com/shopspring/decimal"

// AdjustStockRequest ajuste manual de stock en una sede.
// Quantity positivo suma, negativo resta (no puede dejar el stock bajo cero).
type AdjustStockRequest struct {
	ProductID  string          `json:"product_id" validate:"required,uuid"`
	LocationID string          `json:"location_id" validate:"required,uuid"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason"`
}

// TransferStockRequest traslado de stock entre sedes.
type TransferStockRequest struct {
	ProductID      string          `json:"product_id" validate:"required,uuid"`
	FromLocationID string          `json:"from_location_id" validate:"required,uuid"`
	ToLocationID   string          `json:"to_location_id" validate:"required,uuid"`
	Quantity       decimal.Decimal `json:"quantity"`
}
