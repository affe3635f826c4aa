package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// RecordSaleUseCase registra ventas: congela nombre, SKU y precio de cada
// línea, asigna el consecutivo de la sede y descuenta stock, todo en una
// sola transacción.
type RecordSaleUseCase struct {
	txRunner     SaleTxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	activity     *activity.Recorder
	invalidator  ReportInvalidator
	log          *logger.Logger
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(
	txRunner SaleTxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	recorder *activity.Recorder,
	invalidator ReportInvalidator,
	log *logger.Logger,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		activity:     recorder,
		invalidator:  invalidator,
		log:          log,
	}
}

// Record registra una venta completa.
func (uc *RecordSaleUseCase) Record(ctx context.Context, companyID, userID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil || location.CompanyID != companyID || !location.Active {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		LocationID:    in.LocationID,
		UserID:        userID,
		Status:        entity.SaleStatusCompletada,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		SoldAt:        now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]*entity.SaleItem, 0, len(in.Items))
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	discountTotal := decimal.Zero
	for _, line := range in.Items {
		if !line.Quantity.GreaterThan(decimal.Zero) || line.Discount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		if !product.Active {
			return nil, domain.ErrInvalidInput
		}
		unitPrice := line.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.Price
		}
		if unitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lineSubtotal := line.Quantity.Mul(unitPrice).Sub(line.Discount)
		if lineSubtotal.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lineTax := lineSubtotal.Mul(product.TaxRate).Div(cien)
		items = append(items, &entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			TaxRate:     product.TaxRate,
			Discount:    line.Discount,
			Subtotal:    lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
		taxTotal = taxTotal.Add(lineTax)
		discountTotal = discountTotal.Add(line.Discount)
	}
	sale.Subtotal = subtotal
	sale.TaxTotal = taxTotal.Round(2)
	sale.DiscountTotal = discountTotal
	sale.GrandTotal = subtotal.Add(sale.TaxTotal)

	err = uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository, stockRepo repository.StockRepository) error {
		number, err := saleRepo.NextNumber(sale.LocationID)
		if err != nil {
			return err
		}
		sale.Number = number
		for _, item := range items {
			stock, err := stockRepo.GetForUpdate(item.ProductID, sale.LocationID)
			if err != nil {
				return err
			}
			if stock.Quantity.LessThan(item.Quantity) {
				return fmt.Errorf("producto %s: %w", item.SKU, domain.ErrInsufficientStock)
			}
			stock.Quantity = stock.Quantity.Sub(item.Quantity)
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}
		return saleRepo.Create(sale, items)
	})
	if err != nil {
		return nil, err
	}

	uc.activity.Record(companyID, userID, entity.ActivityEntityVenta, sale.ID,
		entity.ActivityActionCrear,
		fmt.Sprintf("venta #%d en %s por %s", sale.Number, location.Name, sale.GrandTotal.StringFixed(2)))
	uc.invalidate(ctx, companyID)

	return toSaleResponse(sale, items), nil
}

func (uc *RecordSaleUseCase) invalidate(ctx context.Context, companyID string) {
	if uc.invalidator == nil {
		return
	}
	if err := uc.invalidator.InvalidateCompany(ctx, companyID); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("company_id", companyID).Msg("no se pudo invalidar cache de reportes")
	}
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	if sale == nil {
		return nil
	}
	resp := &dto.SaleResponse{
		ID:            sale.ID,
		CompanyID:     sale.CompanyID,
		LocationID:    sale.LocationID,
		UserID:        sale.UserID,
		Number:        sale.Number,
		Status:        sale.Status,
		PaymentMethod: sale.PaymentMethod,
		Subtotal:      sale.Subtotal,
		TaxTotal:      sale.TaxTotal,
		DiscountTotal: sale.DiscountTotal,
		GrandTotal:    sale.GrandTotal,
		Notes:         sale.Notes,
		SoldAt:        sale.SoldAt,
		VoidedAt:      sale.VoidedAt,
		VoidReason:    sale.VoidReason,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxRate:     item.TaxRate,
			Discount:    item.Discount,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}
