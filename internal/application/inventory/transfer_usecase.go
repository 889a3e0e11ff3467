package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	domaininventory "github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/inventory"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

// CreateTransferUseCase coordina traslados multi-línea de la bodega principal
// a un vehículo de reparto: asigna lotes por política FIFO con bloqueo de
// fila, descuenta en origen, crea lotes destino con linaje, registra líneas y
// movimientos, y finaliza el traslado; todo en una transacción. Cualquier
// fallo descarta la transacción completa.
type CreateTransferUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
}

// NewCreateTransferUseCase construye el caso de uso.
func NewCreateTransferUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		productRepo:  productRepo,
	}
}

// TransferItemInput línea de producto a trasladar.
type TransferItemInput struct {
	ProductID int64
	Quantity  int64
}

// CreateTransferInput entrada para un traslado bodega → vehículo.
type CreateTransferInput struct {
	ToLocationID int64
	Items        []TransferItemInput
	Notes        string
	ActorID      int64
}

// TransferResult identificación del traslado completado.
type TransferResult struct {
	TransferID     int64
	TransferNumber string
}

// CreateTransfer valida origen/destino y ejecuta el traslado atómico.
// El origen siempre es la bodega principal; el destino debe ser un vehículo.
func (uc *CreateTransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*TransferResult, error) {
	if len(input.Items) == 0 || input.ActorID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
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
	dest, err := uc.locationRepo.GetByID(input.ToLocationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, domain.ErrNotFound
	}
	if !dest.IsVan() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	today := dateOnly(now)
	transferNumber := fmt.Sprintf("TRF-%d", now.UnixMilli())

	var result *TransferResult
	err = uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		transferRepo repository.TransferRepository,
		movementRepo repository.MovementRepository,
	) error {
		transfer := &entity.Transfer{
			TransferNumber: transferNumber,
			FromLocationID: store.ID,
			ToLocationID:   dest.ID,
			TransferredBy:  input.ActorID,
			Status:         entity.TransferStatusPending,
			Notes:          input.Notes,
			TransferDate:   now,
		}
		if err := transferRepo.Create(transfer); err != nil {
			return err
		}

		for _, item := range input.Items {
			if err := uc.processItem(batchRepo, transferRepo, movementRepo,
				transfer, store.ID, dest.ID, item, input.ActorID, now, today); err != nil {
				return err
			}
		}

		if err := transferRepo.UpdateStatus(transfer.ID, entity.TransferStatusCompleted); err != nil {
			return err
		}
		result = &TransferResult{TransferID: transfer.ID, TransferNumber: transfer.TransferNumber}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// processItem traslada una línea: selección FIFO sobre los lotes bloqueados
// del origen, descuento, lote destino con linaje, línea PROCESSED y registro
// de auditoría TRANSFER.
func (uc *CreateTransferUseCase) processItem(
	batchRepo repository.BatchRepository,
	transferRepo repository.TransferRepository,
	movementRepo repository.MovementRepository,
	transfer *entity.Transfer,
	fromLocationID, toLocationID int64,
	item TransferItemInput,
	actorID int64,
	now, today time.Time,
) error {
	// Bloquea los lotes ACTIVE del producto en origen (SELECT FOR UPDATE):
	// dos traslados concurrentes sobre el mismo lote se serializan aquí.
	batches, err := batchRepo.ListActiveForUpdate(item.ProductID, fromLocationID)
	if err != nil {
		return err
	}
	source, err := domaininventory.SelectBatch(batches, item.Quantity)
	if err != nil {
		return err
	}
	if item.Quantity > source.Quantity {
		return domain.ErrInsufficientStock
	}
	if err := batchRepo.UpdateQuantity(source.ID, source.Quantity-item.Quantity, actorID); err != nil {
		return err
	}

	destBatch := &entity.Batch{
		ProductID:     item.ProductID,
		LocationID:    toLocationID,
		BatchNumber:   fmt.Sprintf("%s-%s", transfer.TransferNumber, source.BatchNumber),
		Quantity:      item.Quantity,
		PricePerUnit:  source.PricePerUnit,
		ExpiryDate:    source.ExpiryDate,
		ReceivedDate:  today,
		Status:        entity.BatchStatusActive,
		ParentBatchID: &source.ID,
		CreatedBy:     actorID,
		UpdatedBy:     actorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := batchRepo.Create(destBatch); err != nil {
		return err
	}

	transferItem := &entity.TransferItem{
		TransferID:         transfer.ID,
		ProductID:          item.ProductID,
		SourceBatchID:      source.ID,
		DestinationBatchID: &destBatch.ID,
		Quantity:           item.Quantity,
		UnitPrice:          source.PricePerUnit,
		Status:             entity.TransferItemStatusProcessed,
	}
	if err := transferRepo.CreateItem(transferItem); err != nil {
		return err
	}

	record := &entity.MovementRecord{
		ProductID:      item.ProductID,
		FromLocationID: &fromLocationID,
		ToLocationID:   &toLocationID,
		QuantityChange: item.Quantity,
		MovementType:   entity.MovementTypeTransfer,
		ReferenceID:    &transfer.ID,
		CreatedBy:      actorID,
		CreatedAt:      now,
	}
	return movementRepo.Create(record)
}
