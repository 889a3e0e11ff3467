package dto

import "github.com/shopspring/decimal"

// TransferItemDTO línea de un traslado para lecturas.
type TransferItemDTO struct {
	ID                 int64           `json:"id"`
	ProductID          int64           `json:"product_id"`
	SourceBatchID      int64           `json:"source_batch_id"`
	DestinationBatchID *int64          `json:"destination_batch_id,omitempty"`
	Quantity           int64           `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	Status             string          `json:"status"`
}

// TransferDTO traslado con sus líneas para lecturas.
type TransferDTO struct {
	ID             int64             `json:"id"`
	TransferNumber string            `json:"transfer_number"`
	FromLocationID int64             `json:"from_location_id"`
	ToLocationID   int64             `json:"to_location_id"`
	TransferredBy  int64             `json:"transferred_by"`
	Status         string            `json:"status"`
	Notes          string            `json:"notes,omitempty"`
	TransferDate   string            `json:"transfer_date"`
	Items          []TransferItemDTO `json:"items,omitempty"`
}
