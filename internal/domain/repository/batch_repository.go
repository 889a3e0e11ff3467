package repository

import (
	"time"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
)

// BatchRepository puerto de persistencia de lotes.
// Las variantes ForUpdate bloquean la(s) fila(s) (SELECT FOR UPDATE) y solo
// tienen sentido dentro de una transacción: son el punto de enforcement para
// que dos traslados concurrentes no consuman el mismo lote de más.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id int64) (*entity.Batch, error)
	GetForUpdate(id int64) (*entity.Batch, error)
	// ListActiveForUpdate devuelve los lotes ACTIVE de un producto en una
	// ubicación, ya ordenados por política FIFO (vencimiento, recepción, id).
	ListActiveForUpdate(productID, locationID int64) ([]*entity.Batch, error)
	ListActive(productID, locationID int64) ([]*entity.Batch, error)
	UpdateQuantity(id int64, quantity int64, updatedBy int64) error
	AvailableQuantity(productID, locationID int64) (int64, error)
	NearestExpiry(productID, locationID int64) (*time.Time, error)
	// Lineage devuelve la cadena de ancestros del lote, del propio lote hasta
	// la recepción original (parent_batch_id = NULL).
	Lineage(id int64) ([]*entity.Batch, error)
}
