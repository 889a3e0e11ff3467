package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypePurchase   = "PURCHASE"   // entrada por compra/recepción
	MovementTypeTransfer   = "TRANSFER"   // traslado entre ubicaciones
	MovementTypeSale       = "SALE"       // salida por venta
	MovementTypeAdjustment = "ADJUSTMENT" // ajuste manual
)

// MovementRecord es una entrada de auditoría append-only: describe un cambio
// de cantidad y su causa. Nunca se actualiza ni se borra; es la única pista
// de auditoría de todos los cambios de stock.
type MovementRecord struct {
	ID             int64
	ProductID      int64
	FromLocationID *int64 // nil en entradas (PURCHASE)
	ToLocationID   *int64 // nil en salidas (SALE)
	QuantityChange int64
	MovementType   string // PURCHASE | TRANSFER | SALE | ADJUSTMENT
	ReferenceID    *int64 // transfer_id, purchase_id, etc.
	CreatedBy      int64
	CreatedAt      time.Time
}
