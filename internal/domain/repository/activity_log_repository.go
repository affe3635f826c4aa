package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// ActivityFilter filtros de listado del log de actividad.
type ActivityFilter struct {
	Entity string
	UserID string
	Limit  int
	Offset int
}

// ActivityLogRepository puerto de persistencia para ActivityLog (append-only).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	ListByCompany(companyID string, filter ActivityFilter) ([]*entity.ActivityLog, error)
}
