package sales

import (
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ReceiptPDFUseCase genera el recibo PDF de una venta.
type ReceiptPDFUseCase struct {
	saleRepo     repository.SaleRepository
	companyRepo  repository.CompanyRepository
	locationRepo repository.LocationRepository
	settingsRepo repository.SettingsRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(
	saleRepo repository.SaleRepository,
	companyRepo repository.CompanyRepository,
	locationRepo repository.LocationRepository,
	settingsRepo repository.SettingsRepository,
	generator ReceiptPDFGenerator,
) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{
		saleRepo:     saleRepo,
		companyRepo:  companyRepo,
		locationRepo: locationRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// Generate genera el PDF del recibo de la venta indicada.
func (uc *ReceiptPDFUseCase) Generate(saleID, companyID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(sale.LocationID)
	if err != nil {
		return nil, err
	}
	settings, err := uc.settingsRepo.Get(companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(companyID)
	}
	return uc.generator.GenerateReceipt(company, location, settings, sale, items)
}
