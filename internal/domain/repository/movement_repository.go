package repository

import (
	"time"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
)

// MovementRepository puerto del registro de auditoría de movimientos.
// Solo append y lectura; las entradas nunca se actualizan ni se borran.
type MovementRepository interface {
	Create(record *entity.MovementRecord) error
	ListByProduct(productID int64, from, to *time.Time, limit, offset int) ([]*entity.MovementRecord, error)
	ListByLocation(locationID int64, from, to *time.Time, limit, offset int) ([]*entity.MovementRecord, error)
}
