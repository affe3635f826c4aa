package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
	"github.com/shopspring/decimal"
)

const topProductsLimit = 10

// UseCase reportes de ventas e inventario. El resumen de ventas usa
// cache-aside: la invalidación corre al registrar o anular una venta.
type UseCase struct {
	reportRepo  repository.ReportRepository
	companyRepo repository.CompanyRepository
	cache       Cache
	pdf         SummaryPDFGenerator
	xml         SummaryXMLExporter
	log         *logger.Logger
}

// NewUseCase construye el caso de uso. cache puede ser nil (consulta directa a BD).
func NewUseCase(
	reportRepo repository.ReportRepository,
	companyRepo repository.CompanyRepository,
	cache Cache,
	pdf SummaryPDFGenerator,
	xml SummaryXMLExporter,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		reportRepo:  reportRepo,
		companyRepo: companyRepo,
		cache:       cache,
		pdf:         pdf,
		xml:         xml,
		log:         log,
	}
}

// SalesSummary arma el resumen de ventas del rango [start, end].
func (uc *UseCase) SalesSummary(ctx context.Context, companyID string, start, end time.Time) (*dto.SalesSummaryResponse, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	key := summaryKey(companyID, start, end)
	if uc.cache != nil {
		var cached dto.SalesSummaryResponse
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil && uc.log != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("fallo leyendo cache de reportes")
		}
		if hit {
			return &cached, nil
		}
	}

	totals, err := uc.reportRepo.GetSalesTotals(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	byPayment, err := uc.reportRepo.GetSalesByPayment(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	byLocation, err := uc.reportRepo.GetSalesByLocation(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	topProducts, err := uc.reportRepo.GetTopProducts(ctx, companyID, start, end, topProductsLimit)
	if err != nil {
		return nil, err
	}

	summary := &dto.SalesSummaryResponse{
		CompanyID:     companyID,
		Start:         start,
		End:           end,
		SaleCount:     totals.SaleCount,
		Subtotal:      totals.Subtotal,
		TaxTotal:      totals.TaxTotal,
		DiscountTotal: totals.DiscountTotal,
		GrandTotal:    totals.GrandTotal,
		AverageTicket: averageTicket(totals),
		ByPayment:     make([]dto.PaymentBreakdownDTO, 0, len(byPayment)),
		ByLocation:    make([]dto.LocationBreakdownDTO, 0, len(byLocation)),
		TopProducts:   make([]dto.TopProductDTO, 0, len(topProducts)),
	}
	for _, p := range byPayment {
		summary.ByPayment = append(summary.ByPayment, dto.PaymentBreakdownDTO{
			PaymentMethod: p.PaymentMethod,
			SaleCount:     p.SaleCount,
			Total:         p.Total,
		})
	}
	for _, l := range byLocation {
		summary.ByLocation = append(summary.ByLocation, dto.LocationBreakdownDTO{
			LocationID:   l.LocationID,
			LocationName: l.LocationName,
			SaleCount:    l.SaleCount,
			Total:        l.Total,
		})
	}
	for _, t := range topProducts {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:   t.ProductID,
			SKU:         t.SKU,
			ProductName: t.ProductName,
			UnitsSold:   t.UnitsSold,
			Revenue:     t.Revenue,
		})
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, summary); err != nil && uc.log != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("fallo escribiendo cache de reportes")
		}
	}
	return summary, nil
}

// LowStock lista los productos cuyo stock en alguna sede está en el umbral o por debajo.
// No se cachea: el stock cambia con cada venta.
func (uc *UseCase) LowStock(ctx context.Context, companyID string) (*dto.LowStockReportResponse, error) {
	results, err := uc.reportRepo.GetLowStock(ctx, companyID)
	if err != nil {
		return nil, err
	}
	report := &dto.LowStockReportResponse{
		CompanyID: companyID,
		Items:     make([]dto.LowStockItemDTO, 0, len(results)),
	}
	for _, r := range results {
		report.Items = append(report.Items, dto.LowStockItemDTO{
			ProductID:    r.ProductID,
			SKU:          r.SKU,
			ProductName:  r.ProductName,
			LocationID:   r.LocationID,
			LocationName: r.LocationName,
			Quantity:     r.Quantity,
			MinStock:     r.MinStock,
		})
	}
	return report, nil
}

// ExportSummaryPDF genera el resumen de ventas en PDF.
func (uc *UseCase) ExportSummaryPDF(ctx context.Context, companyID string, start, end time.Time) ([]byte, error) {
	company, summary, err := uc.companyAndSummary(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSalesSummary(company, summary)
}

// ExportSummaryXML genera el resumen de ventas en XML.
func (uc *UseCase) ExportSummaryXML(ctx context.Context, companyID string, start, end time.Time) ([]byte, error) {
	company, summary, err := uc.companyAndSummary(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportSalesSummary(company, summary)
}

func (uc *UseCase) companyAndSummary(ctx context.Context, companyID string, start, end time.Time) (*entity.Company, *dto.SalesSummaryResponse, error) {
	c, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, domain.ErrNotFound
	}
	s, err := uc.SalesSummary(ctx, companyID, start, end)
	if err != nil {
		return nil, nil, err
	}
	return c, s, nil
}

func averageTicket(totals repository.SalesTotalsResult) decimal.Decimal {
	if totals.SaleCount == 0 {
		return decimal.Zero
	}
	return totals.GrandTotal.Div(decimal.NewFromInt(totals.SaleCount)).Round(2)
}

func summaryKey(companyID string, start, end time.Time) string {
	return fmt.Sprintf("reports:%s:summary:%s:%s", companyID, start.Format("2006-01-02"), end.Format("2006-01-02"))
}
