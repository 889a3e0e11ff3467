package dto

import "github.com/shopspring/decimal"

// ReceiveItemRequest línea de una recepción de stock. La fecha de vencimiento
// viaja como YYYY-MM-DD. BatchNumber vacío = el sistema genera uno.
type ReceiveItemRequest struct {
	ProductID   int64           `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	BatchNumber string          `json:"batch_number,omitempty"`
	ExpiryDate  string          `json:"expiry_date"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ReceiveStockRequest body para POST /api/inventory/receipts.
type ReceiveStockRequest struct {
	PurchaseID *int64               `json:"purchase_id,omitempty"`
	Items      []ReceiveItemRequest `json:"items"`
}

// ReceiveStockResponse lotes creados por una recepción.
type ReceiveStockResponse struct {
	BatchIDs []int64 `json:"batch_ids"`
}

// TransferItemRequest línea de producto de un traslado.
type TransferItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CreateTransferRequest body para POST /api/transfers. El origen siempre es
// la bodega principal; ToLocationID debe ser un vehículo.
type CreateTransferRequest struct {
	ToLocationID int64                 `json:"to_location_id"`
	Items        []TransferItemRequest `json:"items"`
	Notes        string                `json:"notes,omitempty"`
}

// CreateTransferResponse identificación del traslado completado.
type CreateTransferResponse struct {
	TransferID     int64  `json:"transfer_id"`
	TransferNumber string `json:"transfer_number"`
}

// MovementRecordDTO entrada de auditoría para listados.
type MovementRecordDTO struct {
	ID             int64  `json:"id"`
	ProductID      int64  `json:"product_id"`
	FromLocationID *int64 `json:"from_location_id,omitempty"`
	ToLocationID   *int64 `json:"to_location_id,omitempty"`
	QuantityChange int64  `json:"quantity_change"`
	MovementType   string `json:"movement_type"`
	ReferenceID    *int64 `json:"reference_id,omitempty"`
	CreatedBy      int64  `json:"created_by"`
	CreatedAt      string `json:"created_at"`
}
