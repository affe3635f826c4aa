package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
// Search se compara contra la columna normalizada name_search y contra sku/barcode.
type ProductFilter struct {
	Search          string
	Category        string
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, filter ProductFilter) ([]*entity.Product, error)
}
