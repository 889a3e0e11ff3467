package dto

import "github.com/shopspring/decimal"

// StockSummaryDTO totales de stock por tipo de ubicación.
type StockSummaryDTO struct {
	StoreTotal int64 `json:"store_total"`
	VanTotal   int64 `json:"van_total"`
	GrandTotal int64 `json:"grand_total"`
}

// AvailabilityDTO disponibilidad de un producto en una ubicación, con el
// vencimiento más próximo entre sus lotes ACTIVE (null si no hay lotes).
type AvailabilityDTO struct {
	ProductID         int64   `json:"product_id"`
	LocationID        int64   `json:"location_id"`
	AvailableQuantity int64   `json:"available_quantity"`
	NearestExpiry     *string `json:"nearest_expiry,omitempty"`
}

// LowStockDTO producto bajo su umbral de stock.
type LowStockDTO struct {
	ProductID         int64  `json:"product_id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	AvailableQuantity int64  `json:"available_quantity"`
	LowStockThreshold int64  `json:"low_stock_threshold"`
}

// BatchExpiryDTO lote visto desde las consultas de vencimiento.
type BatchExpiryDTO struct {
	BatchID      int64  `json:"batch_id"`
	BatchNumber  string `json:"batch_number"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	LocationID   int64  `json:"location_id"`
	LocationName string `json:"location_name"`
	Quantity     int64  `json:"quantity"`
	ExpiryDate   string `json:"expiry_date"`
}

// ValuationItemDTO valoración de inventario de un producto.
type ValuationItemDTO struct {
	ProductID int64           `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	AvgCost   decimal.Decimal `json:"avg_cost"`
	Value     decimal.Decimal `json:"value"`
}

// ValuationDTO valoración completa con totales.
type ValuationDTO struct {
	Products      []ValuationItemDTO `json:"products"`
	TotalQuantity int64              `json:"total_quantity"`
	TotalValue    decimal.Decimal    `json:"total_value"`
}

// BatchLineageDTO eslabón de la cadena de linaje de un lote.
type BatchLineageDTO struct {
	BatchID       int64           `json:"batch_id"`
	BatchNumber   string          `json:"batch_number"`
	LocationID    int64           `json:"location_id"`
	Quantity      int64           `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	ReceivedDate  string          `json:"received_date"`
	ParentBatchID *int64          `json:"parent_batch_id,omitempty"`
}
