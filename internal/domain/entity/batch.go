package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote.
const (
	BatchStatusActive   = "ACTIVE"
	BatchStatusDepleted = "DEPLETED"
	BatchStatusExpired  = "EXPIRED"
)

// Batch es la unidad atómica del ledger: una cantidad discreta y fechada de un
// producto en una ubicación. Se crea al recibir stock (sin padre) o al
// trasladar (ParentBatchID = lote origen del que se separó). Nunca se borra
// físicamente: al agotarse la cantidad llega a cero y las consultas de
// disponibilidad lo ignoran de forma natural.
type Batch struct {
	ID            int64
	ProductID     int64
	LocationID    int64
	BatchNumber   string
	Quantity      int64 // unidades enteras, >= 0 siempre
	PricePerUnit  decimal.Decimal
	ExpiryDate    time.Time // solo fecha
	ReceivedDate  time.Time // solo fecha
	Status        string    // ACTIVE | DEPLETED | EXPIRED
	ParentBatchID *int64    // linaje: lote origen en un traslado
	CreatedBy     int64
	UpdatedBy     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsExpiredAt indica si el lote ya venció a la fecha dada.
func (b *Batch) IsExpiredAt(today time.Time) bool {
	return b.ExpiryDate.Before(truncateToDate(today))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
