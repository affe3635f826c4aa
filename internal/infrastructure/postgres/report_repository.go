package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para reportes.
// Todas las consultas de ventas consideran únicamente el estado completada.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesTotals totales del período.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, companyID string, start, end time.Time) (repository.SalesTotalsResult, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(subtotal), 0),
			COALESCE(SUM(tax_total), 0),
			COALESCE(SUM(discount_total), 0),
			COALESCE(SUM(grand_total), 0)
		FROM sales
		WHERE company_id = $1 AND status = 'completada' AND sold_at >= $2 AND sold_at <= $3`
	var res repository.SalesTotalsResult
	err := r.q.QueryRow(ctx, query, companyID, start, end).Scan(
		&res.SaleCount, &res.Subtotal, &res.TaxTotal, &res.DiscountTotal, &res.GrandTotal,
	)
	if err != nil {
		return repository.SalesTotalsResult{}, fmt.Errorf("sales totals: %w", err)
	}
	return res, nil
}

// GetSalesByPayment ventas del período agrupadas por medio de pago.
func (r *ReportRepo) GetSalesByPayment(ctx context.Context, companyID string, start, end time.Time) ([]repository.PaymentBreakdownResult, error) {
	query := `
		SELECT payment_method, COUNT(*), COALESCE(SUM(grand_total), 0)
		FROM sales
		WHERE company_id = $1 AND status = 'completada' AND sold_at >= $2 AND sold_at <= $3
		GROUP BY payment_method
		ORDER BY SUM(grand_total) DESC`
	rows, err := r.q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by payment: %w", err)
	}
	defer rows.Close()
	var list []repository.PaymentBreakdownResult
	for rows.Next() {
		var p repository.PaymentBreakdownResult
		if err := rows.Scan(&p.PaymentMethod, &p.SaleCount, &p.Total); err != nil {
			return nil, fmt.Errorf("scan payment breakdown: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetSalesByLocation ventas del período agrupadas por sede.
func (r *ReportRepo) GetSalesByLocation(ctx context.Context, companyID string, start, end time.Time) ([]repository.LocationBreakdownResult, error) {
	query := `
		SELECT s.location_id, l.name, COUNT(*), COALESCE(SUM(s.grand_total), 0)
		FROM sales s
		JOIN locations l ON l.id = s.location_id
		WHERE s.company_id = $1 AND s.status = 'completada' AND s.sold_at >= $2 AND s.sold_at <= $3
		GROUP BY s.location_id, l.name
		ORDER BY SUM(s.grand_total) DESC`
	rows, err := r.q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("sales by location: %w", err)
	}
	defer rows.Close()
	var list []repository.LocationBreakdownResult
	for rows.Next() {
		var l repository.LocationBreakdownResult
		if err := rows.Scan(&l.LocationID, &l.LocationName, &l.SaleCount, &l.Total); err != nil {
			return nil, fmt.Errorf("scan location breakdown: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// GetTopProducts productos con mayor ingreso del período (sobre líneas congeladas).
func (r *ReportRepo) GetTopProducts(ctx context.Context, companyID string, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT i.product_id, i.sku, i.product_name,
			COALESCE(SUM(i.quantity), 0), COALESCE(SUM(i.subtotal), 0)
		FROM sale_items i
		JOIN sales s ON s.id = i.sale_id
		WHERE s.company_id = $1 AND s.status = 'completada' AND s.sold_at >= $2 AND s.sold_at <= $3
		GROUP BY i.product_id, i.sku, i.product_name
		ORDER BY SUM(i.subtotal) DESC
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, companyID, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.SKU, &t.ProductName, &t.UnitsSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetLowStock productos activos cuyo stock en una sede activa está en el umbral o por debajo.
func (r *ReportRepo) GetLowStock(ctx context.Context, companyID string) ([]repository.LowStockResult, error) {
	query := `
		SELECT p.id, p.sku, p.name, l.id, l.name, sl.quantity, p.min_stock
		FROM stock_levels sl
		JOIN products p ON p.id = sl.product_id
		JOIN locations l ON l.id = sl.location_id
		WHERE p.company_id = $1 AND p.active AND l.active
		  AND p.min_stock > 0 AND sl.quantity <= p.min_stock
		ORDER BY l.name, p.name`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockResult
	for rows.Next() {
		var ls repository.LowStockResult
		if err := rows.Scan(&ls.ProductID, &ls.SKU, &ls.ProductName,
			&ls.LocationID, &ls.LocationName, &ls.Quantity, &ls.MinStock); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, ls)
	}
	return list, rows.Err()
}
