package sales_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos que usan los casos de uso de ventas
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCompanyAndSKU(string, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(*entity.Product) error { return nil }
func (f *fakeProductRepo) ListByCompany(string, repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(*entity.Location) error { return nil }
func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}
func (f *fakeLocationRepo) Update(*entity.Location) error { return nil }
func (f *fakeLocationRepo) ListByCompany(string, bool, int, int) ([]*entity.Location, error) {
	return nil, nil
}
func (f *fakeLocationRepo) HasStock(string) (bool, error) { return false, nil }

// fakeStockRepo guarda el stock por clave producto|sede. Igual que el repo
// real, una fila inexistente se comporta como cantidad cero.
type fakeStockRepo struct {
	levels map[string]*entity.StockLevel
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{levels: map[string]*entity.StockLevel{}}
}

func stockKey(productID, locationID string) string { return productID + "|" + locationID }

func (f *fakeStockRepo) set(productID, locationID string, qty int64) {
	f.levels[stockKey(productID, locationID)] = &entity.StockLevel{
		ProductID:  productID,
		LocationID: locationID,
		Quantity:   decimal.NewFromInt(qty),
	}
}

func (f *fakeStockRepo) quantity(productID, locationID string) decimal.Decimal {
	if lv, ok := f.levels[stockKey(productID, locationID)]; ok {
		return lv.Quantity
	}
	return decimal.Zero
}

func (f *fakeStockRepo) Get(productID, locationID string) (*entity.StockLevel, error) {
	return f.GetForUpdate(productID, locationID)
}

func (f *fakeStockRepo) GetForUpdate(productID, locationID string) (*entity.StockLevel, error) {
	if lv, ok := f.levels[stockKey(productID, locationID)]; ok {
		copia := *lv
		return &copia, nil
	}
	return &entity.StockLevel{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
}

func (f *fakeStockRepo) Upsert(stock *entity.StockLevel) error {
	copia := *stock
	f.levels[stockKey(stock.ProductID, stock.LocationID)] = &copia
	return nil
}

func (f *fakeStockRepo) ListByProduct(productID string) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, lv := range f.levels {
		if lv.ProductID == productID {
			out = append(out, lv)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) ListByLocation(string) ([]*entity.StockLevel, error) { return nil, nil }

type fakeSaleRepo struct {
	sales      map[string]*entity.Sale
	items      map[string][]*entity.SaleItem
	nextNumber int64
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.Sale{}, items: map[string][]*entity.SaleItem{}}
}

func (f *fakeSaleRepo) Create(sale *entity.Sale, items []*entity.SaleItem) error {
	f.sales[sale.ID] = sale
	f.items[sale.ID] = items
	return nil
}

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	if s, ok := f.sales[id]; ok {
		copia := *s
		return &copia, nil
	}
	return nil, nil
}

func (f *fakeSaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	return f.items[saleID], nil
}

func (f *fakeSaleRepo) ListByCompany(string, repository.SaleFilter) ([]*entity.Sale, error) {
	return nil, nil
}

func (f *fakeSaleRepo) NextNumber(string) (int64, error) {
	f.nextNumber++
	return f.nextNumber, nil
}

// MarkVoided replica la condición del UPDATE real: solo anula una venta que
// sigue completada.
func (f *fakeSaleRepo) MarkVoided(sale *entity.Sale) error {
	stored, ok := f.sales[sale.ID]
	if !ok || stored.Status != entity.SaleStatusCompletada {
		return domain.ErrSaleAlreadyVoided
	}
	f.sales[sale.ID] = sale
	return nil
}

// fakeTxRunner ejecuta el closure directamente contra los fakes, sin
// transacción real.
type fakeTxRunner struct {
	saleRepo  *fakeSaleRepo
	stockRepo *fakeStockRepo
}

func (f *fakeTxRunner) RunSale(_ context.Context, fn func(repository.SaleRepository, repository.StockRepository) error) error {
	return fn(f.saleRepo, f.stockRepo)
}

// fakeInvalidator cuenta las invalidaciones de cache por comercio.
type fakeInvalidator struct {
	calls []string
}

func (f *fakeInvalidator) InvalidateCompany(_ context.Context, companyID string) error {
	f.calls = append(f.calls, companyID)
	return nil
}
