package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// InventoryUseCase ajustes y traslados de stock entre sedes, con bloqueo de
// fila (SELECT FOR UPDATE) y Commit/Rollback vía TxRunner.
type InventoryUseCase struct {
	txRunner     TxRunner
	stockRepo    repository.StockRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	activity     *activity.Recorder
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	recorder *activity.Recorder,
) *InventoryUseCase {
	return &InventoryUseCase{
		txRunner:     txRunner,
		stockRepo:    stockRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		activity:     recorder,
	}
}

// Adjust aplica un ajuste manual de stock. Quantity positivo suma, negativo
// resta; nunca deja el stock bajo cero.
func (uc *InventoryUseCase) Adjust(ctx context.Context, companyID, userID string, in dto.AdjustStockRequest) error {
	if in.Quantity.IsZero() {
		return domain.ErrInvalidInput
	}
	product, location, err := uc.resolve(companyID, in.ProductID, in.LocationID)
	if err != nil {
		return err
	}
	now := time.Now()
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		stock, err := stockRepo.GetForUpdate(in.ProductID, in.LocationID)
		if err != nil {
			return err
		}
		newQty := stock.Quantity.Add(in.Quantity)
		if newQty.IsNegative() {
			return domain.ErrInsufficientStock
		}
		stock.Quantity = newQty
		stock.UpdatedAt = now
		return stockRepo.Upsert(stock)
	})
	if err != nil {
		return err
	}
	uc.activity.Record(companyID, userID, entity.ActivityEntityInventario, product.ID,
		entity.ActivityActionAjustar,
		fmt.Sprintf("ajuste de %s en %s (%s): %s", product.SKU, location.Name, in.Reason, in.Quantity.String()))
	return nil
}

// Transfer traslada stock de una sede a otra en la misma transacción.
func (uc *InventoryUseCase) Transfer(ctx context.Context, companyID, userID string, in dto.TransferStockRequest) error {
	if !in.Quantity.GreaterThan(decimal.Zero) || in.FromLocationID == in.ToLocationID {
		return domain.ErrInvalidInput
	}
	product, from, err := uc.resolve(companyID, in.ProductID, in.FromLocationID)
	if err != nil {
		return err
	}
	to, err := uc.locationRepo.GetByID(in.ToLocationID)
	if err != nil {
		return err
	}
	if to == nil || to.CompanyID != companyID || !to.Active {
		return domain.ErrNotFound
	}
	now := time.Now()
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		// Bloquea la fila de la sede origen
		origin, err := stockRepo.GetForUpdate(in.ProductID, in.FromLocationID)
		if err != nil {
			return err
		}
		if origin.Quantity.LessThan(in.Quantity) {
			return domain.ErrInsufficientStock
		}
		dest, err := stockRepo.GetForUpdate(in.ProductID, in.ToLocationID)
		if err != nil {
			return err
		}
		origin.Quantity = origin.Quantity.Sub(in.Quantity)
		dest.Quantity = dest.Quantity.Add(in.Quantity)
		origin.UpdatedAt = now
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		return stockRepo.Upsert(dest)
	})
	if err != nil {
		return err
	}
	uc.activity.Record(companyID, userID, entity.ActivityEntityInventario, product.ID,
		entity.ActivityActionTransferir,
		fmt.Sprintf("traslado de %s: %s de %s a %s", product.SKU, in.Quantity.String(), from.Name, to.Name))
	return nil
}

// Levels devuelve el stock del producto en todas las sedes.
func (uc *InventoryUseCase) Levels(companyID, productID string) ([]dto.StockLevelResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	levels, err := uc.stockRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, lv := range levels {
		out = append(out, dto.StockLevelResponse{
			ProductID:  lv.ProductID,
			LocationID: lv.LocationID,
			Quantity:   lv.Quantity,
			UpdatedAt:  lv.UpdatedAt,
		})
	}
	return out, nil
}

// resolve valida que producto y sede existan, estén activos y pertenezcan al comercio.
func (uc *InventoryUseCase) resolve(companyID, productID, locationID string) (*entity.Product, *entity.Location, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, nil, domain.ErrForbidden
	}
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, nil, err
	}
	if location == nil || location.CompanyID != companyID || !location.Active {
		return nil, nil, domain.ErrNotFound
	}
	return product, location, nil
}
