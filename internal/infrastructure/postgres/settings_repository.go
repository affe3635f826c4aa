package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de persistencia para ajustes del comercio.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve los ajustes del comercio o nil si aún no existen.
func (r *SettingsRepo) Get(companyID string) (*entity.Settings, error) {
	query := `
		SELECT company_id, currency, tax_rate, receipt_footer, low_stock_alerts, alert_email, updated_at
		FROM settings WHERE company_id = $1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&s.CompanyID, &s.Currency, &s.TaxRate, &s.ReceiptFooter, &s.LowStockAlerts, &s.AlertEmail, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o actualiza la fila única de ajustes del comercio.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (company_id, currency, tax_rate, receipt_footer, low_stock_alerts, alert_email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id) DO UPDATE SET
			currency = $2, tax_rate = $3, receipt_footer = $4, low_stock_alerts = $5, alert_email = $6, updated_at = $7`
	_, err := r.q.Exec(context.Background(), query,
		settings.CompanyID, settings.Currency, settings.TaxRate, settings.ReceiptFooter,
		settings.LowStockAlerts, settings.AlertEmail, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// ListAlertEnabled devuelve los ajustes con alertas de stock activas y correo configurado.
func (r *SettingsRepo) ListAlertEnabled() ([]*entity.Settings, error) {
	query := `
		SELECT company_id, currency, tax_rate, receipt_footer, low_stock_alerts, alert_email, updated_at
		FROM settings WHERE low_stock_alerts AND alert_email <> ''`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list alert settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Settings
	for rows.Next() {
		var s entity.Settings
		if err := rows.Scan(&s.CompanyID, &s.Currency, &s.TaxRate, &s.ReceiptFooter,
			&s.LowStockAlerts, &s.AlertEmail, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan settings: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
