package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

const reportCompanyID = "00000000-0000-0000-0000-0000000000c1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeReportRepo devuelve agregados fijos y cuenta las consultas para poder
// verificar el comportamiento del cache.
type fakeReportRepo struct {
	totalsCalls int
}

func (f *fakeReportRepo) GetSalesTotals(_ context.Context, _ string, _, _ time.Time) (repository.SalesTotalsResult, error) {
	f.totalsCalls++
	return repository.SalesTotalsResult{
		SaleCount:  4,
		Subtotal:   decimal.NewFromInt(10000),
		TaxTotal:   decimal.NewFromInt(1900),
		GrandTotal: decimal.NewFromInt(11900),
	}, nil
}

func (f *fakeReportRepo) GetSalesByPayment(context.Context, string, time.Time, time.Time) ([]repository.PaymentBreakdownResult, error) {
	return []repository.PaymentBreakdownResult{
		{PaymentMethod: entity.PaymentEfectivo, SaleCount: 3, Total: decimal.NewFromInt(8900)},
		{PaymentMethod: entity.PaymentTarjeta, SaleCount: 1, Total: decimal.NewFromInt(3000)},
	}, nil
}

func (f *fakeReportRepo) GetSalesByLocation(context.Context, string, time.Time, time.Time) ([]repository.LocationBreakdownResult, error) {
	return []repository.LocationBreakdownResult{
		{LocationID: "l1", LocationName: "Tienda Centro", SaleCount: 4, Total: decimal.NewFromInt(11900)},
	}, nil
}

func (f *fakeReportRepo) GetTopProducts(context.Context, string, time.Time, time.Time, int) ([]repository.TopProductResult, error) {
	return []repository.TopProductResult{
		{ProductID: "p1", SKU: "CAFE-500", ProductName: "Café molido 500g", UnitsSold: decimal.NewFromInt(12), Revenue: decimal.NewFromInt(12000)},
	}, nil
}

func (f *fakeReportRepo) GetLowStock(context.Context, string) ([]repository.LowStockResult, error) {
	return []repository.LowStockResult{
		{ProductID: "p1", SKU: "CAFE-500", ProductName: "Café molido 500g", LocationID: "l1", LocationName: "Tienda Centro", Quantity: decimal.NewFromInt(2), MinStock: decimal.NewFromInt(5)},
	}, nil
}

type fakeCompanyRepo struct{}

func (f *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return &entity.Company{ID: id, Name: "Tiendas La Esquina"}, nil
}
func (f *fakeCompanyRepo) Update(*entity.Company) error { return nil }

// fakeCache cache en memoria con la misma semántica que el de Redis.
type fakeCache struct {
	entries map[string]dto.SalesSummaryResponse
	sets    int
}

func newFakeCache() *fakeCache { return &fakeCache{entries: map[string]dto.SalesSummaryResponse{}} }

func (f *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	cached, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	*dest.(*dto.SalesSummaryResponse) = cached
	return true, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value any) error {
	f.entries[key] = *value.(*dto.SalesSummaryResponse)
	f.sets++
	return nil
}

func (f *fakeCache) InvalidateCompany(context.Context, string) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests SalesSummary
// ──────────────────────────────────────────────────────────────────────────────

func rango(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2026-08-01")
	require.NoError(t, err)
	return start, start.AddDate(0, 0, 30)
}

func TestSalesSummary_ConsultaYGuardaEnCache(t *testing.T) {
	repo := &fakeReportRepo{}
	cache := newFakeCache()
	uc := report.NewUseCase(repo, &fakeCompanyRepo{}, cache, nil, nil, nil)
	start, end := rango(t)

	summary, err := uc.SalesSummary(context.Background(), reportCompanyID, start, end)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, int64(4), summary.SaleCount)
	assert.True(t, summary.GrandTotal.Equal(decimal.NewFromInt(11900)))
	// 11900 / 4 = 2975
	assert.True(t, summary.AverageTicket.Equal(decimal.NewFromInt(2975)), "ticket promedio: %s", summary.AverageTicket)
	assert.Len(t, summary.ByPayment, 2)
	assert.Len(t, summary.ByLocation, 1)
	assert.Len(t, summary.TopProducts, 1)

	assert.Equal(t, 1, repo.totalsCalls)
	assert.Equal(t, 1, cache.sets, "el resumen recién calculado se guarda en cache")
}

func TestSalesSummary_CacheHitNoConsultaLaBase(t *testing.T) {
	repo := &fakeReportRepo{}
	cache := newFakeCache()
	uc := report.NewUseCase(repo, &fakeCompanyRepo{}, cache, nil, nil, nil)
	start, end := rango(t)

	first, err := uc.SalesSummary(context.Background(), reportCompanyID, start, end)
	require.NoError(t, err)
	second, err := uc.SalesSummary(context.Background(), reportCompanyID, start, end)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.totalsCalls, "la segunda consulta debe salir del cache")
	assert.True(t, first.GrandTotal.Equal(second.GrandTotal))
}

func TestSalesSummary_SinCacheConsultaDirecto(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := report.NewUseCase(repo, &fakeCompanyRepo{}, nil, nil, nil, nil)
	start, end := rango(t)

	_, err := uc.SalesSummary(context.Background(), reportCompanyID, start, end)
	require.NoError(t, err)
	_, err = uc.SalesSummary(context.Background(), reportCompanyID, start, end)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.totalsCalls)
}

func TestSalesSummary_RangoInvertido(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{}, &fakeCompanyRepo{}, nil, nil, nil, nil)
	start, end := rango(t)

	_, err := uc.SalesSummary(context.Background(), reportCompanyID, end, start)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_ListaProductosBajoElUmbral(t *testing.T) {
	uc := report.NewUseCase(&fakeReportRepo{}, &fakeCompanyRepo{}, nil, nil, nil, nil)

	out, err := uc.LowStock(context.Background(), reportCompanyID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "CAFE-500", out.Items[0].SKU)
	assert.True(t, out.Items[0].Quantity.LessThanOrEqual(out.Items[0].MinStock))
}
