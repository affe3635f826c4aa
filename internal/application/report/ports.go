package report

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// Cache cache de reportes con TTL. Get devuelve false si la clave no existe.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	InvalidateCompany(ctx context.Context, companyID string) error
}

// SummaryPDFGenerator genera el PDF del resumen de ventas.
type SummaryPDFGenerator interface {
	GenerateSalesSummary(company *entity.Company, summary *dto.SalesSummaryResponse) ([]byte, error)
}

// SummaryXMLExporter serializa el resumen de ventas a XML.
type SummaryXMLExporter interface {
	ExportSalesSummary(company *entity.Company, summary *dto.SalesSummaryResponse) ([]byte, error)
}
