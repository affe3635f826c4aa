package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// SettingsRepository puerto de persistencia para Settings (fila única por comercio).
type SettingsRepository interface {
	// Get devuelve nil si el comercio aún no guarda ajustes.
	Get(companyID string) (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
	// ListAlertEnabled devuelve los ajustes con alertas de stock activas y correo configurado.
	ListAlertEnabled() ([]*entity.Settings, error)
}
