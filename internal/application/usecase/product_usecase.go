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
	"github.com/jhoicas/Ventas-api/pkg/normalize"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja por
// sede vía el módulo de inventario; el borrado es suave (Active=false).
type ProductUseCase struct {
	repo     repository.ProductRepository
	activity *activity.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recorder *activity.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, activity: recorder}
}

// validTaxRate IVA Colombia: 0, 5 o 19.
func validTaxRate(rate decimal.Decimal) bool {
	return rate.Equal(decimal.Zero) ||
		rate.Equal(decimal.NewFromInt(5)) ||
		rate.Equal(decimal.NewFromInt(19))
}

// Create crea un nuevo producto activo con stock cero en todas las sedes.
func (uc *ProductUseCase) Create(companyID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndSKU(companyID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if !validTaxRate(in.TaxRate) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SKU:         in.SKU,
		Barcode:     in.Barcode,
		Name:        in.Name,
		NameSearch:  normalize.Fold(in.Name),
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		TaxRate:     in.TaxRate,
		MinStock:    in.MinStock,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityEntityProducto, product.ID,
		entity.ActivityActionCrear, fmt.Sprintf("producto %s (%s)", product.Name, product.SKU))
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El stock no se toca aquí.
func (uc *ProductUseCase) Update(id, userID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
		product.NameSearch = normalize.Fold(*in.Name)
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.TaxRate != nil {
		if !validTaxRate(*in.TaxRate) {
			return nil, domain.ErrInvalidInput
		}
		product.TaxRate = *in.TaxRate
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.activity.Record(product.CompanyID, userID, entity.ActivityEntityProducto, product.ID,
		entity.ActivityActionActualizar, fmt.Sprintf("producto %s", product.SKU))
	return toProductResponse(product), nil
}

// Deactivate borrado suave: marca el producto inactivo. La historia de
// ventas que lo referencia queda intacta.
func (uc *ProductUseCase) Deactivate(id, userID string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if !product.Active {
		return nil, domain.ErrConflict
	}
	product.Active = false
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.activity.Record(product.CompanyID, userID, entity.ActivityEntityProducto, product.ID,
		entity.ActivityActionDesactivar, fmt.Sprintf("producto %s", product.SKU))
	return toProductResponse(product), nil
}

// List lista productos por comercio con búsqueda normalizada y paginación.
func (uc *ProductUseCase) List(companyID string, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	filter.Search = normalize.Fold(filter.Search)
	list, err := uc.repo.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		MinStock:    p.MinStock,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
