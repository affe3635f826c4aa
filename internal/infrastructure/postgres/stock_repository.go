package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia para stock por sede.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock de un producto en una sede. Si no hay fila devuelve cantidad cero.
func (r *StockRepo) Get(productID, locationID string) (*entity.StockLevel, error) {
	return r.get(productID, locationID, false)
}

// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *StockRepo) GetForUpdate(productID, locationID string) (*entity.StockLevel, error) {
	return r.get(productID, locationID, true)
}

func (r *StockRepo) get(productID, locationID string, forUpdate bool) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_levels WHERE product_id = $1 AND location_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Sin fila: stock cero
			return &entity.StockLevel{
				ProductID:  productID,
				LocationID: locationID,
				Quantity:   decimal.Zero,
				UpdatedAt:  time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert crea o actualiza la fila de stock.
func (r *StockRepo) Upsert(stock *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, location_id) DO UPDATE SET quantity = $3, updated_at = $4`
	_, err := r.q.Exec(context.Background(), query,
		stock.ProductID, stock.LocationID, stock.Quantity, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByProduct devuelve el stock del producto en todas las sedes.
func (r *StockRepo) ListByProduct(productID string) ([]*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_levels WHERE product_id = $1 ORDER BY location_id`
	return r.list(query, productID)
}

// ListByLocation devuelve el stock de todos los productos de una sede.
func (r *StockRepo) ListByLocation(locationID string) ([]*entity.StockLevel, error) {
	query := `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_levels WHERE location_id = $1 ORDER BY product_id`
	return r.list(query, locationID)
}

func (r *StockRepo) list(query string, arg any) ([]*entity.StockLevel, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
