package inventory

import (
	"context"
	"time"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/dto"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

// TransferQueryUseCase lecturas de traslados (consulta y listado).
type TransferQueryUseCase struct {
	transferRepo repository.TransferRepository
}

// NewTransferQueryUseCase construye el caso de uso.
func NewTransferQueryUseCase(transferRepo repository.TransferRepository) *TransferQueryUseCase {
	return &TransferQueryUseCase{transferRepo: transferRepo}
}

// GetByID devuelve un traslado con sus líneas.
func (uc *TransferQueryUseCase) GetByID(ctx context.Context, id int64) (*dto.TransferDTO, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	return toTransferDTO(transfer), nil
}

// List devuelve traslados paginados, más recientes primero.
func (uc *TransferQueryUseCase) List(ctx context.Context, limit, offset int) ([]dto.TransferDTO, error) {
	transfers, err := uc.transferRepo.List(normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferDTO, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, *toTransferDTO(t))
	}
	return out, nil
}

func toTransferDTO(t *entity.Transfer) *dto.TransferDTO {
	out := &dto.TransferDTO{
		ID:             t.ID,
		TransferNumber: t.TransferNumber,
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		TransferredBy:  t.TransferredBy,
		Status:         t.Status,
		Notes:          t.Notes,
		TransferDate:   t.TransferDate.Format(time.RFC3339),
	}
	for _, item := range t.Items {
		out.Items = append(out.Items, dto.TransferItemDTO{
			ID:                 item.ID,
			ProductID:          item.ProductID,
			SourceBatchID:      item.SourceBatchID,
			DestinationBatchID: item.DestinationBatchID,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			Status:             item.Status,
		})
	}
	return out
}
