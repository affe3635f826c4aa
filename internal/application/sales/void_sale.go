package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// VoidSaleUseCase anula una venta: repone el stock en la sede y marca la
// venta como anulada con motivo, en una sola transacción. Las ventas nunca
// se borran.
type VoidSaleUseCase struct {
	txRunner    SaleTxRunner
	saleRepo    repository.SaleRepository
	activity    *activity.Recorder
	invalidator ReportInvalidator
	log         *logger.Logger
}

// NewVoidSaleUseCase construye el caso de uso.
func NewVoidSaleUseCase(
	txRunner SaleTxRunner,
	saleRepo repository.SaleRepository,
	recorder *activity.Recorder,
	invalidator ReportInvalidator,
	log *logger.Logger,
) *VoidSaleUseCase {
	return &VoidSaleUseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		activity:    recorder,
		invalidator: invalidator,
		log:         log,
	}
}

// Void anula la venta indicada si pertenece al comercio y sigue completada.
func (uc *VoidSaleUseCase) Void(ctx context.Context, saleID, companyID, userID string, in dto.VoidSaleRequest) (*dto.SaleResponse, error) {
	if in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
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
	if sale.Status == entity.SaleStatusAnulada {
		return nil, domain.ErrSaleAlreadyVoided
	}
	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	voidedAt := now
	sale.Status = entity.SaleStatusAnulada
	sale.VoidedAt = &voidedAt
	sale.VoidReason = in.Reason
	sale.UpdatedAt = now

	err = uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository, stockRepo repository.StockRepository) error {
		// MarkVoided va primero: su UPDATE condicionado a completada bloquea la
		// fila de la venta y decide quién anula. La lectura previa fuera de la
		// transacción es solo un chequeo rápido.
		if err := saleRepo.MarkVoided(sale); err != nil {
			return err
		}
		for _, item := range items {
			stock, err := stockRepo.GetForUpdate(item.ProductID, sale.LocationID)
			if err != nil {
				return err
			}
			stock.Quantity = stock.Quantity.Add(item.Quantity)
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.activity.Record(companyID, userID, entity.ActivityEntityVenta, sale.ID,
		entity.ActivityActionAnular,
		fmt.Sprintf("venta #%d anulada: %s", sale.Number, in.Reason))
	if uc.invalidator != nil {
		if err := uc.invalidator.InvalidateCompany(ctx, companyID); err != nil && uc.log != nil {
			uc.log.Warn().Err(err).Str("company_id", companyID).Msg("no se pudo invalidar cache de reportes")
		}
	}

	return toSaleResponse(sale, items), nil
}
