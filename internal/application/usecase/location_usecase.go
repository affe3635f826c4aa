package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para sedes (tiendas y bodegas).
type LocationUseCase struct {
	repo     repository.LocationRepository
	activity *activity.Recorder
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, recorder *activity.Recorder) *LocationUseCase {
	return &LocationUseCase{repo: repo, activity: recorder}
}

// Create crea una sede activa.
func (uc *LocationUseCase) Create(companyID, userID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Type != entity.LocationTypeTienda && in.Type != entity.LocationTypeBodega {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Address:   in.Address,
		Type:      in.Type,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityEntitySede, location.ID,
		entity.ActivityActionCrear, fmt.Sprintf("sede %s (%s)", location.Name, location.Type))
	return toLocationResponse(location), nil
}

// GetByID obtiene una sede por ID.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza nombre, dirección o tipo de la sede.
func (uc *LocationUseCase) Update(id, userID string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Address != nil {
		location.Address = *in.Address
	}
	if in.Type != nil {
		if *in.Type != entity.LocationTypeTienda && *in.Type != entity.LocationTypeBodega {
			return nil, domain.ErrInvalidInput
		}
		location.Type = *in.Type
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	uc.activity.Record(location.CompanyID, userID, entity.ActivityEntitySede, location.ID,
		entity.ActivityActionActualizar, fmt.Sprintf("sede %s", location.Name))
	return toLocationResponse(location), nil
}

// Deactivate borrado suave. Una sede con stock pendiente no puede desactivarse:
// primero hay que trasladar o ajustar a cero.
func (uc *LocationUseCase) Deactivate(id, userID string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if !location.Active {
		return nil, domain.ErrConflict
	}
	hasStock, err := uc.repo.HasStock(id)
	if err != nil {
		return nil, err
	}
	if hasStock {
		return nil, domain.ErrLocationHasStock
	}
	location.Active = false
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	uc.activity.Record(location.CompanyID, userID, entity.ActivityEntitySede, location.ID,
		entity.ActivityActionDesactivar, fmt.Sprintf("sede %s", location.Name))
	return toLocationResponse(location), nil
}

// List lista sedes por comercio con paginación.
func (uc *LocationUseCase) List(companyID string, includeInactive bool, limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, includeInactive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:        l.ID,
		CompanyID: l.CompanyID,
		Name:      l.Name,
		Address:   l.Address,
		Type:      l.Type,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
