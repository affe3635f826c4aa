package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/inventory"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

const (
	invCompanyID = "00000000-0000-0000-0000-0000000000c1"
	invProductID = "00000000-0000-0000-0000-0000000000p1"
	invTiendaID  = "00000000-0000-0000-0000-0000000000l1"
	invBodegaID  = "00000000-0000-0000-0000-0000000000l2"
	invUserID    = "00000000-0000-0000-0000-0000000000u1"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
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

type fakeStockRepo struct {
	levels map[string]*entity.StockLevel
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

type fakeTxRunner struct {
	stockRepo *fakeStockRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.StockRepository) error) error {
	return fn(f.stockRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: un producto activo y dos sedes (tienda y bodega) del mismo comercio
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *inventory.InventoryUseCase
	stockRepo *fakeStockRepo
}

func newFixture() *fixture {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		invProductID: {
			ID:        invProductID,
			CompanyID: invCompanyID,
			SKU:       "CAFE-500",
			Name:      "Café molido 500g",
			Active:    true,
		},
	}}
	locations := &fakeLocationRepo{locations: map[string]*entity.Location{
		invTiendaID: {ID: invTiendaID, CompanyID: invCompanyID, Name: "Tienda Centro", Type: entity.LocationTypeTienda, Active: true},
		invBodegaID: {ID: invBodegaID, CompanyID: invCompanyID, Name: "Bodega Norte", Type: entity.LocationTypeBodega, Active: true},
	}}
	stockRepo := &fakeStockRepo{levels: map[string]*entity.StockLevel{}}
	uc := inventory.NewInventoryUseCase(
		&fakeTxRunner{stockRepo: stockRepo},
		stockRepo, products, locations, nil,
	)
	return &fixture{uc: uc, stockRepo: stockRepo}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_SumaStock(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.set(invProductID, invTiendaID, 5)

	err := fx.uc.Adjust(context.Background(), invCompanyID, invUserID, dto.AdjustStockRequest{
		ProductID:  invProductID,
		LocationID: invTiendaID,
		Quantity:   decimal.NewFromInt(3),
		Reason:     "recepción de compra",
	})
	require.NoError(t, err)
	assert.True(t, fx.stockRepo.quantity(invProductID, invTiendaID).Equal(decimal.NewFromInt(8)))
}

func TestAdjust_RestaStock(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.set(invProductID, invTiendaID, 5)

	err := fx.uc.Adjust(context.Background(), invCompanyID, invUserID, dto.AdjustStockRequest{
		ProductID:  invProductID,
		LocationID: invTiendaID,
		Quantity:   decimal.NewFromInt(-2),
		Reason:     "merma",
	})
	require.NoError(t, err)
	assert.True(t, fx.stockRepo.quantity(invProductID, invTiendaID).Equal(decimal.NewFromInt(3)))
}

func TestAdjust_NoDejaStockNegativo(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.set(invProductID, invTiendaID, 2)

	err := fx.uc.Adjust(context.Background(), invCompanyID, invUserID, dto.AdjustStockRequest{
		ProductID:  invProductID,
		LocationID: invTiendaID,
		Quantity:   decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, fx.stockRepo.quantity(invProductID, invTiendaID).Equal(decimal.NewFromInt(2)),
		"un ajuste rechazado no debe tocar el stock")
}

func TestAdjust_CantidadCero(t *testing.T) {
	fx := newFixture()
	err := fx.uc.Adjust(context.Background(), invCompanyID, invUserID, dto.AdjustStockRequest{
		ProductID:  invProductID,
		LocationID: invTiendaID,
		Quantity:   decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_ProductoDeOtroComercio(t *testing.T) {
	fx := newFixture()
	err := fx.uc.Adjust(context.Background(), "otro-comercio", invUserID, dto.AdjustStockRequest{
		ProductID:  invProductID,
		LocationID: invTiendaID,
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Transfer
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_MueveEntreSedes(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.set(invProductID, invBodegaID, 20)

	err := fx.uc.Transfer(context.Background(), invCompanyID, invUserID, dto.TransferStockRequest{
		ProductID:      invProductID,
		FromLocationID: invBodegaID,
		ToLocationID:   invTiendaID,
		Quantity:       decimal.NewFromInt(8),
	})
	require.NoError(t, err)

	assert.True(t, fx.stockRepo.quantity(invProductID, invBodegaID).Equal(decimal.NewFromInt(12)))
	assert.True(t, fx.stockRepo.quantity(invProductID, invTiendaID).Equal(decimal.NewFromInt(8)))
}

func TestTransfer_OrigenSinStockSuficiente(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.set(invProductID, invBodegaID, 3)

	err := fx.uc.Transfer(context.Background(), invCompanyID, invUserID, dto.TransferStockRequest{
		ProductID:      invProductID,
		FromLocationID: invBodegaID,
		ToLocationID:   invTiendaID,
		Quantity:       decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestTransfer_MismaSede(t *testing.T) {
	fx := newFixture()
	err := fx.uc.Transfer(context.Background(), invCompanyID, invUserID, dto.TransferStockRequest{
		ProductID:      invProductID,
		FromLocationID: invTiendaID,
		ToLocationID:   invTiendaID,
		Quantity:       decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransfer_CantidadNoPositiva(t *testing.T) {
	fx := newFixture()
	err := fx.uc.Transfer(context.Background(), invCompanyID, invUserID, dto.TransferStockRequest{
		ProductID:      invProductID,
		FromLocationID: invBodegaID,
		ToLocationID:   invTiendaID,
		Quantity:       decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Levels
// ──────────────────────────────────────────────────────────────────────────────

func TestLevels_DevuelveStockPorSede(t *testing.T) {
	fx := newFixture()
	fx.stockRepo.set(invProductID, invTiendaID, 4)
	fx.stockRepo.set(invProductID, invBodegaID, 16)

	levels, err := fx.uc.Levels(invCompanyID, invProductID)
	require.NoError(t, err)
	assert.Len(t, levels, 2)
}

func TestLevels_ProductoDeOtroComercio(t *testing.T) {
	fx := newFixture()
	_, err := fx.uc.Levels("otro-comercio", invProductID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
