package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// StockRepository puerto de persistencia para StockLevel (stock por sede).
type StockRepository interface {
	Get(productID, locationID string) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una transacción.
	GetForUpdate(productID, locationID string) (*entity.StockLevel, error)
	Upsert(stock *entity.StockLevel) error
	ListByProduct(productID string) ([]*entity.StockLevel, error)
	ListByLocation(locationID string) ([]*entity.StockLevel, error)
}
