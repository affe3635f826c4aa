package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, company_id, location_id, user_id, number, status, payment_method,
	subtotal, tax_total, discount_total, grand_total, notes, sold_at, voided_at, void_reason, created_at, updated_at`

// Create persiste la cabecera y las líneas de una venta.
func (r *SaleRepo) Create(sale *entity.Sale, items []*entity.SaleItem) error {
	query := `
		INSERT INTO sales (id, company_id, location_id, user_id, number, status, payment_method,
			subtotal, tax_total, discount_total, grand_total, notes, sold_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, sale.LocationID, sale.UserID, sale.Number, sale.Status,
		sale.PaymentMethod, sale.Subtotal, sale.TaxTotal, sale.DiscountTotal, sale.GrandTotal,
		sale.Notes, sale.SoldAt, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	itemQuery := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, sku, quantity, unit_price, tax_rate, discount, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.SaleID, item.ProductID, item.ProductName, item.SKU,
			item.Quantity, item.UnitPrice, item.TaxRate, item.Discount, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetItems devuelve las líneas de una venta.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, sku, quantity, unit_price, tax_rate, discount, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName, &it.SKU,
			&it.Quantity, &it.UnitPrice, &it.TaxRate, &it.Discount, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// ListByCompany lista ventas del comercio con filtros dinámicos.
func (r *SaleRepo) ListByCompany(companyID string, filter repository.SaleFilter) ([]*entity.Sale, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + saleColumns + ` FROM sales WHERE company_id = $1`)
	args := []any{companyID}
	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&sb, " AND sold_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&sb, " AND sold_at <= $%d", len(args))
	}
	if filter.LocationID != "" {
		args = append(args, filter.LocationID)
		fmt.Fprintf(&sb, " AND location_id = $%d", len(args))
	}
	if filter.PaymentMethod != "" {
		args = append(args, filter.PaymentMethod)
		fmt.Fprintf(&sb, " AND payment_method = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	args = append(args, filter.Limit, filter.Offset)
	fmt.Fprintf(&sb, " ORDER BY sold_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// NextNumber incrementa y devuelve el consecutivo de la sede.
// Debe llamarse dentro de la transacción que crea la venta: el UPDATE bloquea
// la fila de la sede y serializa el consecutivo.
func (r *SaleRepo) NextNumber(locationID string) (int64, error) {
	var number int64
	err := r.q.QueryRow(context.Background(),
		`UPDATE locations SET next_sale_number = next_sale_number + 1 WHERE id = $1 RETURNING next_sale_number`,
		locationID,
	).Scan(&number)
	if err != nil {
		return 0, fmt.Errorf("next sale number: %w", err)
	}
	return number, nil
}

// MarkVoided persiste el estado anulada con fecha y motivo. El UPDATE exige
// status completada: dos anulaciones concurrentes se serializan sobre la fila
// y la segunda recibe ErrSaleAlreadyVoided, nunca se repone stock dos veces.
func (r *SaleRepo) MarkVoided(sale *entity.Sale) error {
	query := `
		UPDATE sales SET status = $2, voided_at = $3, void_reason = $4, updated_at = $5
		WHERE id = $1 AND status = $6`
	tag, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Status, sale.VoidedAt, sale.VoidReason, sale.UpdatedAt,
		entity.SaleStatusCompletada,
	)
	if err != nil {
		return fmt.Errorf("mark sale voided: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSaleAlreadyVoided
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var voidReason *string
	err := row.Scan(&s.ID, &s.CompanyID, &s.LocationID, &s.UserID, &s.Number, &s.Status,
		&s.PaymentMethod, &s.Subtotal, &s.TaxTotal, &s.DiscountTotal, &s.GrandTotal,
		&s.Notes, &s.SoldAt, &s.VoidedAt, &voidReason, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if voidReason != nil {
		s.VoidReason = *voidReason
	}
	return &s, nil
}
