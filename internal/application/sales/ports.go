package sales

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción, pasando los
// repositorios de venta y stock atados a esa tx. Consecutivo, cabecera,
// líneas y descuento de stock se confirman o revierten juntos.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository, stockRepo repository.StockRepository) error) error
}

// ReportInvalidator invalida reportes cacheados del comercio tras registrar
// o anular una venta. La invalidación es best effort.
type ReportInvalidator interface {
	InvalidateCompany(ctx context.Context, companyID string) error
}

// ReceiptPDFGenerator genera el recibo PDF de una venta.
type ReceiptPDFGenerator interface {
	GenerateReceipt(company *entity.Company, location *entity.Location, settings *entity.Settings, sale *entity.Sale, items []*entity.SaleItem) ([]byte, error)
}
