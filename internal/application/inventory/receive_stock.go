package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

// ReceiveStockUseCase registra recepciones de stock en la bodega principal:
// crea un lote ACTIVE por línea y su registro de movimiento PURCHASE, todo en
// una sola transacción.
type ReceiveStockUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewReceiveStockUseCase construye el caso de uso.
func NewReceiveStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *ReceiveStockUseCase {
	return &ReceiveStockUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// ReceiveItemInput línea de recepción ya validada en tipos.
type ReceiveItemInput struct {
	ProductID   int64
	Quantity    int64
	BatchNumber string // vacío = se genera uno
	ExpiryDate  time.Time
	UnitPrice   decimal.Decimal
}

// ReceiveStockInput entrada para registrar una recepción. PurchaseID es la
// referencia a la orden de compra externa; el estado de esa orden lo actualiza
// el caller, no este motor.
type ReceiveStockInput struct {
	PurchaseID *int64
	ActorID    int64
	Items      []ReceiveItemInput
}

// ReceiveStock valida las líneas, resuelve la bodega principal y persiste
// lotes y movimientos atómicamente. Devuelve los IDs de lote creados.
func (uc *ReceiveStockUseCase) ReceiveStock(ctx context.Context, input ReceiveStockInput) ([]int64, error) {
	if len(input.Items) == 0 || input.ActorID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) || item.ExpiryDate.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}

	store, err := uc.locationRepo.GetStore()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	today := dateOnly(now)

	batchIDs := make([]int64, 0, len(input.Items))
	err = uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		_ repository.TransferRepository,
		movementRepo repository.MovementRepository,
	) error {
		for _, item := range input.Items {
			batch := &entity.Batch{
				ProductID:    item.ProductID,
				LocationID:   store.ID,
				BatchNumber:  orGeneratedBatchNumber(item.BatchNumber),
				Quantity:     item.Quantity,
				PricePerUnit: item.UnitPrice,
				ExpiryDate:   dateOnly(item.ExpiryDate),
				ReceivedDate: today,
				Status:       entity.BatchStatusActive,
				CreatedBy:    input.ActorID,
				UpdatedBy:    input.ActorID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := batchRepo.Create(batch); err != nil {
				return err
			}
			batchIDs = append(batchIDs, batch.ID)

			toLocation := store.ID
			record := &entity.MovementRecord{
				ProductID:      item.ProductID,
				ToLocationID:   &toLocation,
				QuantityChange: item.Quantity,
				MovementType:   entity.MovementTypePurchase,
				ReferenceID:    input.PurchaseID,
				CreatedBy:      input.ActorID,
				CreatedAt:      now,
			}
			if err := movementRepo.Create(record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batchIDs, nil
}

// orGeneratedBatchNumber genera un número de lote cuando el caller no envía uno.
func orGeneratedBatchNumber(batchNumber string) string {
	if s := strings.TrimSpace(batchNumber); s != "" {
		return s
	}
	return "BAT-" + strings.ToUpper(uuid.New().String()[:8])
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
