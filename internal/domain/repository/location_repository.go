package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// LocationRepository puerto de persistencia para Location (sedes).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	ListByCompany(companyID string, includeInactive bool, limit, offset int) ([]*entity.Location, error)
	// HasStock indica si la sede tiene cantidades mayores que cero (bloquea la desactivación).
	HasStock(locationID string) (bool, error)
}
