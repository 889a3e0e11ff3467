package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un traslado y de sus líneas.
const (
	TransferStatusPending   = "PENDING"
	TransferStatusCompleted = "COMPLETED"
	TransferStatusFailed    = "FAILED"

	TransferItemStatusPending   = "PENDING"
	TransferItemStatusProcessed = "PROCESSED"
)

// Transfer representa un traslado atómico multi-línea de stock entre dos
// ubicaciones (bodega → vehículo). Nace PENDING y pasa a COMPLETED solo cuando
// todas sus líneas fueron procesadas; cualquier fallo descarta la transacción
// completa, por lo que nunca persiste un traslado FAILED con estado parcial.
type Transfer struct {
	ID             int64
	TransferNumber string // único, derivado del tiempo: TRF-<epoch millis>
	FromLocationID int64
	ToLocationID   int64
	TransferredBy  int64
	Status         string // PENDING | COMPLETED | FAILED
	Notes          string
	TransferDate   time.Time
	Items          []*TransferItem
}

// TransferItem es una línea de producto dentro de un traslado. UnitPrice se
// copia del lote origen; DestinationBatchID se fija al crear el lote destino.
type TransferItem struct {
	ID                 int64
	TransferID         int64
	ProductID          int64
	SourceBatchID      int64
	DestinationBatchID *int64
	Quantity           int64
	UnitPrice          decimal.Decimal
	Status             string // PENDING | PROCESSED
}
