package activity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// Recorder escribe el log de actividad. Un fallo al registrar nunca debe
// abortar la operación de negocio: se loguea y se sigue.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste un registro de actividad (best effort).
func (r *Recorder) Record(companyID, userID, entityName, entityID, action, detail string) {
	if r == nil || r.repo == nil {
		return
	}
	logEntry := &entity.ActivityLog{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		UserID:    userID,
		Entity:    entityName,
		EntityID:  entityID,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := r.repo.Create(logEntry); err != nil && r.log != nil {
		r.log.Warn().Err(err).
			Str("entity", entityName).
			Str("action", action).
			Msg("no se pudo registrar actividad")
	}
}
