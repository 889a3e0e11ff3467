package inventory

import (
	"sort"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
)

// SelectBatch implementa la política FIFO de asignación (servicio de dominio).
// Ordena los lotes ACTIVE por (vencimiento ASC, recepción ASC, id ASC) y
// devuelve el PRIMER lote único cuya cantidad cubre lo solicitado.
//
// Política deliberada de lote único: no se parte la demanda entre varios
// lotes aunque la suma alcanzara; en ese caso retorna ErrInsufficientStock.
func SelectBatch(batches []*entity.Batch, quantity int64) (*entity.Batch, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	eligible := make([]*entity.Batch, 0, len(batches))
	for _, b := range batches {
		if b.Status == entity.BatchStatusActive {
			eligible = append(eligible, b)
		}
	}
	SortFIFO(eligible)
	for _, b := range eligible {
		if b.Quantity >= quantity {
			return b, nil
		}
	}
	return nil, domain.ErrInsufficientStock
}

// SortFIFO ordena lotes in-place según la política de consumo: primero el
// vencimiento más próximo, luego la recepción más antigua, luego el ID.
func SortFIFO(batches []*entity.Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		a, b := batches[i], batches[j]
		if !a.ExpiryDate.Equal(b.ExpiryDate) {
			return a.ExpiryDate.Before(b.ExpiryDate)
		}
		if !a.ReceivedDate.Equal(b.ReceivedDate) {
			return a.ReceivedDate.Before(b.ReceivedDate)
		}
		return a.ID < b.ID
	})
}
