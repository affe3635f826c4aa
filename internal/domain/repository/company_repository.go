package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// CompanyRepository puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
}
