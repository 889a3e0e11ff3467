package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/repository"
)

var _ repository.StockQueryRepository = (*StockQueryRepo)(nil)

// StockQueryRepo lecturas agregadas del ledger sobre PostgreSQL. Corre fuera
// de las transacciones de escritura, sobre el snapshot comprometido.
type StockQueryRepo struct {
	q Querier
}

// NewStockQueryRepository construye el adaptador de lecturas agregadas.
func NewStockQueryRepository(q Querier) *StockQueryRepo {
	return &StockQueryRepo{q: q}
}

// SummaryByLocationKind totales ACTIVE en bodega, vehículos y global.
func (r *StockQueryRepo) SummaryByLocationKind(ctx context.Context) (*repository.StockSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(b.quantity) FILTER (WHERE l.kind = $2), 0),
			COALESCE(SUM(b.quantity) FILTER (WHERE l.kind = $3), 0),
			COALESCE(SUM(b.quantity), 0)
		FROM batches b
		JOIN locations l ON l.id = b.location_id
		WHERE b.status = $1`
	var s repository.StockSummary
	err := r.q.QueryRow(ctx, query,
		entity.BatchStatusActive, entity.LocationKindStore, entity.LocationKindVan,
	).Scan(&s.StoreTotal, &s.VanTotal, &s.GrandTotal)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	return &s, nil
}

// LowStock productos activos cuyo stock ACTIVE total está bajo su umbral.
// Ordena por déficit descendente (mayor quiebre primero).
func (r *StockQueryRepo) LowStock(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT p.id, p.code, p.name, COALESCE(SUM(b.quantity), 0) AS available, p.low_stock_threshold
		FROM products p
		LEFT JOIN batches b ON b.product_id = p.id AND b.status = $1
		WHERE p.active AND p.low_stock_threshold > 0
		GROUP BY p.id, p.code, p.name, p.low_stock_threshold
		HAVING COALESCE(SUM(b.quantity), 0) < p.low_stock_threshold
		ORDER BY (p.low_stock_threshold - COALESCE(SUM(b.quantity), 0)) DESC`
	rows, err := r.q.Query(ctx, query, entity.BatchStatusActive)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var items []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.Code, &it.Name, &it.AvailableQuantity, &it.LowStockThreshold); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ExpiringBatches lotes ACTIVE con cantidad cuyo vencimiento cae en [from, to],
// por vencimiento ascendente.
func (r *StockQueryRepo) ExpiringBatches(ctx context.Context, from, to time.Time) ([]repository.BatchExpiryView, error) {
	query := expiryViewQuery + `
		WHERE b.status = $1 AND b.quantity > 0 AND b.expiry_date BETWEEN $2 AND $3
		ORDER BY b.expiry_date ASC, b.id ASC`
	return r.listExpiryViews(ctx, query, entity.BatchStatusActive, from, to)
}

// ExpiredBatches lotes ACTIVE con cantidad ya vencidos a la fecha dada.
func (r *StockQueryRepo) ExpiredBatches(ctx context.Context, asOf time.Time) ([]repository.BatchExpiryView, error) {
	query := expiryViewQuery + `
		WHERE b.status = $1 AND b.quantity > 0 AND b.expiry_date < $2
		ORDER BY b.expiry_date ASC, b.id ASC`
	return r.listExpiryViews(ctx, query, entity.BatchStatusActive, asOf)
}

const expiryViewQuery = `
		SELECT b.id, b.batch_number, b.product_id, p.name, b.location_id, l.name, b.quantity, b.expiry_date
		FROM batches b
		JOIN products p ON p.id = b.product_id
		JOIN locations l ON l.id = b.location_id`

func (r *StockQueryRepo) listExpiryViews(ctx context.Context, query string, args ...any) ([]repository.BatchExpiryView, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("expiry batches: %w", err)
	}
	defer rows.Close()
	var views []repository.BatchExpiryView
	for rows.Next() {
		var v repository.BatchExpiryView
		if err := rows.Scan(&v.BatchID, &v.BatchNumber, &v.ProductID, &v.ProductName,
			&v.LocationID, &v.LocationName, &v.Quantity, &v.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan expiry view: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// Valuation cantidad ACTIVE, costo promedio simple de los lotes (precio de
// catálogo si el producto no tiene lotes) y valor por producto.
func (r *StockQueryRepo) Valuation(ctx context.Context) ([]repository.ValuationItem, error) {
	query := `
		SELECT p.id, p.code, p.name,
			COALESCE(SUM(b.quantity), 0) AS qty,
			COALESCE(AVG(b.price_per_unit), p.unit_price) AS avg_cost
		FROM products p
		LEFT JOIN batches b ON b.product_id = p.id AND b.status = $1
		WHERE p.active
		GROUP BY p.id, p.code, p.name, p.unit_price
		ORDER BY p.name ASC`
	rows, err := r.q.Query(ctx, query, entity.BatchStatusActive)
	if err != nil {
		return nil, fmt.Errorf("valuation: %w", err)
	}
	defer rows.Close()
	var items []repository.ValuationItem
	for rows.Next() {
		var it repository.ValuationItem
		if err := rows.Scan(&it.ProductID, &it.Code, &it.Name, &it.Quantity, &it.AvgCost); err != nil {
			return nil, fmt.Errorf("scan valuation item: %w", err)
		}
		it.Value = it.AvgCost.Mul(decimal.NewFromInt(it.Quantity))
		items = append(items, it)
	}
	return items, rows.Err()
}
