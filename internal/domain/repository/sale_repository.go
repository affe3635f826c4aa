package repository

import (
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// SaleFilter filtros de listado de ventas.
type SaleFilter struct {
	From          *time.Time
	To            *time.Time
	LocationID    string
	PaymentMethod string
	Status        string
	Limit         int
	Offset        int
}

// SaleRepository puerto de persistencia para Sale y sus líneas.
type SaleRepository interface {
	Create(sale *entity.Sale, items []*entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItems(saleID string) ([]*entity.SaleItem, error)
	ListByCompany(companyID string, filter SaleFilter) ([]*entity.Sale, error)
	// NextNumber incrementa y devuelve el consecutivo de la sede.
	// Debe llamarse dentro de la transacción que crea la venta.
	NextNumber(locationID string) (int64, error)
	// MarkVoided persiste el estado anulada con fecha y motivo. Solo aplica
	// sobre una venta completada; si ya fue anulada devuelve
	// domain.ErrSaleAlreadyVoided.
	MarkVoided(sale *entity.Sale) error
}
