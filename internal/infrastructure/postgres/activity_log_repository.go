package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
// La tabla es append-only: solo INSERT y SELECT.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de persistencia para el log de actividad.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create persiste un registro de actividad.
func (r *ActivityLogRepo) Create(log *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, company_id, user_id, entity, entity_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.CompanyID, log.UserID, log.Entity, log.EntityID, log.Action, log.Detail, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListByCompany lista registros del comercio, más recientes primero.
func (r *ActivityLogRepo) ListByCompany(companyID string, filter repository.ActivityFilter) ([]*entity.ActivityLog, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, company_id, user_id, entity, entity_id, action, detail, created_at
		FROM activity_logs WHERE company_id = $1`)
	args := []any{companyID}
	if filter.Entity != "" {
		args = append(args, filter.Entity)
		fmt.Fprintf(&sb, " AND entity = $%d", len(args))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		fmt.Fprintf(&sb, " AND user_id = $%d", len(args))
	}
	args = append(args, filter.Limit, filter.Offset)
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLog
	for rows.Next() {
		var l entity.ActivityLog
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.UserID, &l.Entity, &l.EntityID,
			&l.Action, &l.Detail, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
