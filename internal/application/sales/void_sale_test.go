package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

const ventaID = "00000000-0000-0000-0000-0000000000s1"

type voidFixture struct {
	uc          *sales.VoidSaleUseCase
	saleRepo    *fakeSaleRepo
	stockRepo   *fakeStockRepo
	invalidator *fakeInvalidator
}

// newVoidFixture arma el caso de uso con una venta completada de 3 unidades
// ya descontadas del stock de la sede (quedan 7).
func newVoidFixture() *voidFixture {
	saleRepo := newFakeSaleRepo()
	stockRepo := newFakeStockRepo()
	stockRepo.set(ventaProductID, ventaLocationID, 7)

	now := time.Now()
	saleRepo.sales[ventaID] = &entity.Sale{
		ID:            ventaID,
		CompanyID:     ventaCompanyID,
		LocationID:    ventaLocationID,
		UserID:        ventaUserID,
		Number:        4,
		Status:        entity.SaleStatusCompletada,
		PaymentMethod: entity.PaymentEfectivo,
		Subtotal:      decimal.NewFromInt(3000),
		TaxTotal:      decimal.NewFromInt(570),
		GrandTotal:    decimal.NewFromInt(3570),
		SoldAt:        now,
	}
	saleRepo.items[ventaID] = []*entity.SaleItem{
		{
			ID:        "item-1",
			SaleID:    ventaID,
			ProductID: ventaProductID,
			SKU:       "CAFE-500",
			Quantity:  decimal.NewFromInt(3),
			UnitPrice: decimal.NewFromInt(1000),
		},
	}

	invalidator := &fakeInvalidator{}
	uc := sales.NewVoidSaleUseCase(
		&fakeTxRunner{saleRepo: saleRepo, stockRepo: stockRepo},
		saleRepo, nil, invalidator, nil,
	)
	return &voidFixture{uc: uc, saleRepo: saleRepo, stockRepo: stockRepo, invalidator: invalidator}
}

func TestVoidSale_ReponeStockYMarcaAnulada(t *testing.T) {
	fx := newVoidFixture()

	resp, err := fx.uc.Void(context.Background(), ventaID, ventaCompanyID, ventaUserID, dto.VoidSaleRequest{
		Reason: "cliente devolvió el producto",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.SaleStatusAnulada, resp.Status)
	assert.Equal(t, "cliente devolvió el producto", resp.VoidReason)
	require.NotNil(t, resp.VoidedAt)

	// Las 3 unidades vuelven al stock de la sede: 7 + 3 = 10
	assert.True(t, fx.stockRepo.quantity(ventaProductID, ventaLocationID).Equal(decimal.NewFromInt(10)))
	assert.Equal(t, []string{ventaCompanyID}, fx.invalidator.calls)
}

func TestVoidSale_YaAnulada(t *testing.T) {
	fx := newVoidFixture()
	fx.saleRepo.sales[ventaID].Status = entity.SaleStatusAnulada

	_, err := fx.uc.Void(context.Background(), ventaID, ventaCompanyID, ventaUserID, dto.VoidSaleRequest{
		Reason: "doble anulación",
	})
	assert.ErrorIs(t, err, domain.ErrSaleAlreadyVoided)
}

// staleSaleReads entrega siempre la venta como completada, simulando dos
// peticiones de anulación que leyeron antes de que la otra confirmara su
// transacción. El guardado condicionado de MarkVoided debe decidir.
type staleSaleReads struct {
	*fakeSaleRepo
}

func (s *staleSaleReads) GetByID(id string) (*entity.Sale, error) {
	sale, err := s.fakeSaleRepo.GetByID(id)
	if sale != nil {
		sale.Status = entity.SaleStatusCompletada
		sale.VoidedAt = nil
		sale.VoidReason = ""
	}
	return sale, err
}

func TestVoidSale_AnulacionesConcurrentesSoloUnaRepone(t *testing.T) {
	fx := newVoidFixture()
	uc := sales.NewVoidSaleUseCase(
		&fakeTxRunner{saleRepo: fx.saleRepo, stockRepo: fx.stockRepo},
		&staleSaleReads{fakeSaleRepo: fx.saleRepo}, nil, fx.invalidator, nil,
	)

	_, err := uc.Void(context.Background(), ventaID, ventaCompanyID, ventaUserID, dto.VoidSaleRequest{
		Reason: "cliente devolvió el producto",
	})
	require.NoError(t, err)

	_, err = uc.Void(context.Background(), ventaID, ventaCompanyID, ventaUserID, dto.VoidSaleRequest{
		Reason: "reintento del cajero",
	})
	assert.ErrorIs(t, err, domain.ErrSaleAlreadyVoided)

	// El stock se repone una sola vez: 7 + 3 = 10, nunca 13.
	assert.True(t, fx.stockRepo.quantity(ventaProductID, ventaLocationID).Equal(decimal.NewFromInt(10)))
	assert.Equal(t, []string{ventaCompanyID}, fx.invalidator.calls,
		"solo la anulación ganadora invalida el cache de reportes")
}

func TestVoidSale_OtroComercio(t *testing.T) {
	fx := newVoidFixture()

	_, err := fx.uc.Void(context.Background(), ventaID, "otro-comercio", ventaUserID, dto.VoidSaleRequest{
		Reason: "no es mía",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVoidSale_NoExiste(t *testing.T) {
	fx := newVoidFixture()

	_, err := fx.uc.Void(context.Background(), "inexistente", ventaCompanyID, ventaUserID, dto.VoidSaleRequest{
		Reason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVoidSale_SinMotivo(t *testing.T) {
	fx := newVoidFixture()

	_, err := fx.uc.Void(context.Background(), ventaID, ventaCompanyID, ventaUserID, dto.VoidSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
