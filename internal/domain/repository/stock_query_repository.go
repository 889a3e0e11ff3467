package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockSummary totales de stock por tipo de ubicación.
type StockSummary struct {
	StoreTotal int64
	VanTotal   int64
	GrandTotal int64
}

// LowStockItem producto cuyo stock ACTIVE total está bajo su umbral.
type LowStockItem struct {
	ProductID         int64
	Code              string
	Name              string
	AvailableQuantity int64
	LowStockThreshold int64
}

// BatchExpiryView lote ACTIVE visto desde las consultas de vencimiento.
type BatchExpiryView struct {
	BatchID      int64
	BatchNumber  string
	ProductID    int64
	ProductName  string
	LocationID   int64
	LocationName string
	Quantity     int64
	ExpiryDate   time.Time
}

// ValuationItem valoración de inventario de un producto: cantidad ACTIVE
// total, costo promedio simple de sus lotes y valor resultante.
type ValuationItem struct {
	ProductID int64
	Code      string
	Name      string
	Quantity  int64
	AvgCost   decimal.Decimal
	Value     decimal.Decimal
}

// StockQueryRepository puerto de lecturas agregadas del ledger. Se ejecutan
// fuera de cualquier transacción de escritura, sobre el snapshot comprometido
// más reciente; ningún resultado autoriza escrituras sin revalidar en la tx.
type StockQueryRepository interface {
	SummaryByLocationKind(ctx context.Context) (*StockSummary, error)
	LowStock(ctx context.Context) ([]LowStockItem, error)
	ExpiringBatches(ctx context.Context, from, to time.Time) ([]BatchExpiryView, error)
	ExpiredBatches(ctx context.Context, asOf time.Time) ([]BatchExpiryView, error)
	Valuation(ctx context.Context) ([]ValuationItem, error)
}
