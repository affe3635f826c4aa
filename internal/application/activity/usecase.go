package activity

import (
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura del log de actividad.
type QueryUseCase struct {
	repo repository.ActivityLogRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(repo repository.ActivityLogRepository) *QueryUseCase {
	return &QueryUseCase{repo: repo}
}

// List lista el log de actividad del comercio con filtros y paginación.
func (uc *QueryUseCase) List(companyID string, filter repository.ActivityFilter) (*dto.ActivityListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toActivityResponse(l))
	}
	return &dto.ActivityListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

func toActivityResponse(l *entity.ActivityLog) dto.ActivityLogResponse {
	return dto.ActivityLogResponse{
		ID:        l.ID,
		CompanyID: l.CompanyID,
		UserID:    l.UserID,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		Action:    l.Action,
		Detail:    l.Detail,
		CreatedAt: l.CreatedAt,
	}
}
