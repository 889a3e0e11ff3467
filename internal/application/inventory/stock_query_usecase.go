package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/dto"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// StockQueryUseCase lecturas del ledger: disponibilidad, totales por tipo de
// ubicación, stock bajo, vencimientos, valoración, linaje y auditoría.
// Todas las lecturas son de solo consulta sobre el snapshot comprometido;
// ninguna autoriza escrituras sin revalidación dentro de la transacción.
type StockQueryUseCase struct {
	stockRepo    repository.StockQueryRepository
	batchRepo    repository.BatchRepository
	locationRepo repository.LocationRepository
	movementRepo repository.MovementRepository
}

// NewStockQueryUseCase construye el caso de uso de lecturas.
func NewStockQueryUseCase(
	stockRepo repository.StockQueryRepository,
	batchRepo repository.BatchRepository,
	locationRepo repository.LocationRepository,
	movementRepo repository.MovementRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{
		stockRepo:    stockRepo,
		batchRepo:    batchRepo,
		locationRepo: locationRepo,
		movementRepo: movementRepo,
	}
}

// Summary totales de stock ACTIVE en bodega, en vehículos y global.
func (uc *StockQueryUseCase) Summary(ctx context.Context) (*dto.StockSummaryDTO, error) {
	s, err := uc.stockRepo.SummaryByLocationKind(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryDTO{
		StoreTotal: s.StoreTotal,
		VanTotal:   s.VanTotal,
		GrandTotal: s.GrandTotal,
	}, nil
}

// Availability cantidad ACTIVE disponible de un producto en una ubicación y
// su vencimiento más próximo. ErrNotFound si la ubicación no existe.
func (uc *StockQueryUseCase) Availability(ctx context.Context, productID, locationID int64) (*dto.AvailabilityDTO, error) {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	qty, err := uc.batchRepo.AvailableQuantity(productID, locationID)
	if err != nil {
		return nil, err
	}
	nearest, err := uc.batchRepo.NearestExpiry(productID, locationID)
	if err != nil {
		return nil, err
	}
	out := &dto.AvailabilityDTO{
		ProductID:         productID,
		LocationID:        locationID,
		AvailableQuantity: qty,
	}
	if nearest != nil {
		s := nearest.Format(dateLayout)
		out.NearestExpiry = &s
	}
	return out, nil
}

// LowStock productos cuyo stock ACTIVE total está bajo su umbral de catálogo.
func (uc *StockQueryUseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	items, err := uc.stockRepo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockDTO{
			ProductID:         it.ProductID,
			Code:              it.Code,
			Name:              it.Name,
			AvailableQuantity: it.AvailableQuantity,
			LowStockThreshold: it.LowStockThreshold,
		})
	}
	return out, nil
}

// Expiring lotes ACTIVE que vencen entre hoy y hoy+withinDays, por
// vencimiento ascendente.
func (uc *StockQueryUseCase) Expiring(ctx context.Context, withinDays int) ([]dto.BatchExpiryDTO, error) {
	if withinDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	today := dateOnly(time.Now())
	views, err := uc.stockRepo.ExpiringBatches(ctx, today, today.AddDate(0, 0, withinDays))
	if err != nil {
		return nil, err
	}
	return toBatchExpiryDTOs(views), nil
}

// Expired lotes ACTIVE cuyo vencimiento ya pasó.
func (uc *StockQueryUseCase) Expired(ctx context.Context) ([]dto.BatchExpiryDTO, error) {
	views, err := uc.stockRepo.ExpiredBatches(ctx, dateOnly(time.Now()))
	if err != nil {
		return nil, err
	}
	return toBatchExpiryDTOs(views), nil
}

// Valuation valoración de inventario por producto: cantidad ACTIVE, costo
// promedio simple de los lotes (precio de catálogo si no hay lotes) y valor.
func (uc *StockQueryUseCase) Valuation(ctx context.Context) (*dto.ValuationDTO, error) {
	items, err := uc.stockRepo.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ValuationDTO{
		Products:   make([]dto.ValuationItemDTO, 0, len(items)),
		TotalValue: decimal.Zero,
	}
	for _, it := range items {
		out.Products = append(out.Products, dto.ValuationItemDTO{
			ProductID: it.ProductID,
			Code:      it.Code,
			Name:      it.Name,
			Quantity:  it.Quantity,
			AvgCost:   it.AvgCost,
			Value:     it.Value,
		})
		out.TotalQuantity += it.Quantity
		out.TotalValue = out.TotalValue.Add(it.Value)
	}
	return out, nil
}

// Lineage cadena de ancestros de un lote hasta la recepción original.
func (uc *StockQueryUseCase) Lineage(ctx context.Context, batchID int64) ([]dto.BatchLineageDTO, error) {
	chain, err := uc.batchRepo.Lineage(batchID)
	if err != nil {
		return nil, err
	}
	if len(chain) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]dto.BatchLineageDTO, 0, len(chain))
	for _, b := range chain {
		out = append(out, dto.BatchLineageDTO{
			BatchID:       b.ID,
			BatchNumber:   b.BatchNumber,
			LocationID:    b.LocationID,
			Quantity:      b.Quantity,
			PricePerUnit:  b.PricePerUnit,
			ReceivedDate:  b.ReceivedDate.Format(dateLayout),
			ParentBatchID: b.ParentBatchID,
		})
	}
	return out, nil
}

// MovementsByProduct auditoría de movimientos de un producto.
func (uc *StockQueryUseCase) MovementsByProduct(ctx context.Context, productID int64, from, to *time.Time, limit, offset int) ([]dto.MovementRecordDTO, error) {
	records, err := uc.movementRepo.ListByProduct(productID, from, to, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	return toMovementDTOs(records), nil
}

// MovementsByLocation auditoría de movimientos que tocan una ubicación.
func (uc *StockQueryUseCase) MovementsByLocation(ctx context.Context, locationID int64, from, to *time.Time, limit, offset int) ([]dto.MovementRecordDTO, error) {
	records, err := uc.movementRepo.ListByLocation(locationID, from, to, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	return toMovementDTOs(records), nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return limit
}

func toBatchExpiryDTOs(views []repository.BatchExpiryView) []dto.BatchExpiryDTO {
	out := make([]dto.BatchExpiryDTO, 0, len(views))
	for _, v := range views {
		out = append(out, dto.BatchExpiryDTO{
			BatchID:      v.BatchID,
			BatchNumber:  v.BatchNumber,
			ProductID:    v.ProductID,
			ProductName:  v.ProductName,
			LocationID:   v.LocationID,
			LocationName: v.LocationName,
			Quantity:     v.Quantity,
			ExpiryDate:   v.ExpiryDate.Format(dateLayout),
		})
	}
	return out
}

func toMovementDTOs(records []*entity.MovementRecord) []dto.MovementRecordDTO {
	out := make([]dto.MovementRecordDTO, 0, len(records))
	for _, m := range records {
		out = append(out, dto.MovementRecordDTO{
			ID:             m.ID,
			ProductID:      m.ProductID,
			FromLocationID: m.FromLocationID,
			ToLocationID:   m.ToLocationID,
			QuantityChange: m.QuantityChange,
			MovementType:   m.MovementType,
			ReferenceID:    m.ReferenceID,
			CreatedBy:      m.CreatedBy,
			CreatedAt:      m.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
